// Package copyhelper copies fixed strings to the clipboard and reports the
// outcome on a single status display, or to a diagnostic log on failure.
package copyhelper

// Default texts shown by the two copy actions.
const (
	CommandText = "npm start"
	LinkText    = "https://github.com/Gopartner/android-sdk-installer-termux"

	CommandCopiedPrefix = "Teks berhasil disalin: "
	CommandFailedPrefix = "Gagal menyalin teks: "
	LinkCopiedPrefix    = "Link berhasil disalin: "
	LinkFailedPrefix    = "Gagal menyalin link: "

	// StatusID identifies the status display element.
	StatusID = "copiedText"
)

// Action names.
const (
	NameCommand = "command"
	NameLink    = "link"
)

// Action describes one copy operation: the text to copy and the messages
// reported once the write settles.
type Action struct {
	Name         string
	Text         string
	CopiedPrefix string // prepended to Text on the status display
	FailedPrefix string // prepended to the error detail in the diagnostic log
}

// CommandAction returns the action that copies the start command.
func CommandAction() Action {
	return Action{
		Name:         NameCommand,
		Text:         CommandText,
		CopiedPrefix: CommandCopiedPrefix,
		FailedPrefix: CommandFailedPrefix,
	}
}

// LinkAction returns the action that copies the project link.
func LinkAction() Action {
	return Action{
		Name:         NameLink,
		Text:         LinkText,
		CopiedPrefix: LinkCopiedPrefix,
		FailedPrefix: LinkFailedPrefix,
	}
}

// StatusText is the status display text after a successful copy.
func (a Action) StatusText() string {
	return a.CopiedPrefix + a.Text
}

// FailureEntry is the diagnostic log entry for a failed copy.
func (a Action) FailureEntry(detail string) string {
	return a.FailedPrefix + detail
}
