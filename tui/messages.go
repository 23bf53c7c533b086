// ABOUTME: Bubble Tea message types used in the TUI message loop.
// ABOUTME: Carries clipboard write results and copied-flag expiry back into Update.
package tui

import (
	"github.com/2389-research/pxrem/clipboard"
	"github.com/2389-research/pxrem/convert"
)

// CopyResultMsg reports the outcome of an asynchronous clipboard write.
type CopyResultMsg struct {
	Field convert.Field
	Text  string
	Err   error
}

// CopyExpiredMsg asks Update to return Field to idle. It only takes effect if
// Token is still the field's current token.
type CopyExpiredMsg struct {
	Field convert.Field
	Token clipboard.Token
}
