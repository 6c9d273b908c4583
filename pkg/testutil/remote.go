package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// RemoteTree serves a .aiassisted tree over HTTP under /tree/: .version,
// FILES.txt and every added file.
type RemoteTree struct {
	mu sync.Mutex

	versionText string
	order       []string
	files       map[string]string
	digests     map[string]string
	served      map[string]string
	statuses    map[string]int
	requests    []string

	server *httptest.Server
}

// NewRemoteTree starts a server announcing COMMIT_HASH=version. It is
// closed when the test ends.
func NewRemoteTree(t *testing.T, version string) *RemoteTree {
	t.Helper()

	r := &RemoteTree{
		files:    make(map[string]string),
		digests:  make(map[string]string),
		served:   make(map[string]string),
		statuses: make(map[string]int),
	}
	r.SetVersion(version)
	r.server = httptest.NewServer(http.HandlerFunc(r.handle))
	t.Cleanup(r.server.Close)
	return r
}

// URL is the base URL of the tree
func (r *RemoteTree) URL() string {
	return r.server.URL + "/tree"
}

// SetVersion changes the announced COMMIT_HASH
func (r *RemoteTree) SetVersion(version string) *RemoteTree {
	return r.SetVersionText(fmt.Sprintf("COMMIT_HASH=%s\n", version))
}

// SetVersionText replaces the whole .version file
func (r *RemoteTree) SetVersionText(text string) *RemoteTree {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.versionText = text
	return r
}

// AddFile adds or replaces a file and its manifest entry
func (r *RemoteTree) AddFile(path, content string) *RemoteTree {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.files[path]; !ok {
		r.order = append(r.order, path)
	}
	r.files[path] = content
	r.digests[path] = GetTestChecksum(content)
	delete(r.served, path)
	return r
}

// RemoveFile drops a file and its manifest entry
func (r *RemoteTree) RemoveFile(path string) *RemoteTree {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.files, path)
	delete(r.digests, path)
	delete(r.served, path)
	for i, p := range r.order {
		if p == path {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return r
}

// Corrupt serves content for path while the manifest keeps the digest of
// the original content.
func (r *RemoteTree) Corrupt(path, content string) *RemoteTree {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.served[path] = content
	return r
}

// FailWith answers requests for path (".version", "FILES.txt" or a file)
// with status.
func (r *RemoteTree) FailWith(path string, status int) *RemoteTree {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses[path] = status
	return r
}

// Recover clears a FailWith
func (r *RemoteTree) Recover(path string) *RemoteTree {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.statuses, path)
	return r
}

// Digest returns the manifest digest of path
func (r *RemoteTree) Digest(path string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.digests[path]
}

// ManifestText renders FILES.txt
func (r *RemoteTree) ManifestText() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.manifestTextLocked()
}

func (r *RemoteTree) manifestTextLocked() string {
	var b strings.Builder
	b.WriteString("# generated for tests\n")
	for _, p := range r.order {
		fmt.Fprintf(&b, "%s:%s\n", p, r.digests[p])
	}
	return b.String()
}

// Requests returns the relative paths requested so far, in order
func (r *RemoteTree) Requests() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.requests))
	copy(out, r.requests)
	return out
}

// FileRequests returns requested paths other than .version and FILES.txt
func (r *RemoteTree) FileRequests() []string {
	out := []string{}
	for _, p := range r.Requests() {
		if p != ".version" && p != "FILES.txt" {
			out = append(out, p)
		}
	}
	return out
}

// ResetRequests forgets recorded requests
func (r *RemoteTree) ResetRequests() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = nil
}

func (r *RemoteTree) handle(w http.ResponseWriter, req *http.Request) {
	rel, ok := strings.CutPrefix(req.URL.Path, "/tree/")
	if !ok {
		http.NotFound(w, req)
		return
	}

	r.mu.Lock()
	r.requests = append(r.requests, rel)
	status, failing := r.statuses[rel]
	var body string
	found := true
	switch rel {
	case ".version":
		body = r.versionText
	case "FILES.txt":
		body = r.manifestTextLocked()
	default:
		if served, ok := r.served[rel]; ok {
			body = served
		} else {
			body, found = r.files[rel]
		}
	}
	r.mu.Unlock()

	if failing {
		w.WriteHeader(status)
		return
	}
	if !found {
		http.NotFound(w, req)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(body))
}
