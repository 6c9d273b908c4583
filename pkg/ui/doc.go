// Package ui renders user facing output for the aiassisted commands.
//
// Console wraps pterm prefix printers and honours --quiet. Styled output is
// only produced for FormatTerminal, which FormatAuto selects when stdout is a
// color capable terminal and NO_COLOR is unset. Styles are lipgloss styles
// defined in styles/styles.yaml.
//
// Prompter implements installer.Confirmer: it shows the update preview and
// asks for a y/N answer, giving up when the context is cancelled.
package ui
