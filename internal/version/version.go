package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/rstlix0x0/aiassisted/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/rstlix0x0/aiassisted/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/rstlix0x0/aiassisted/internal/version.Date={{.Date}}
)

// UserAgent returns the User-Agent product token for HTTP requests
func UserAgent(product string) string {
	if Version == "" || Version == "dev" {
		return product
	}
	return product + "/" + Version
}
