package controller

// DialogKind distinguishes failure dialogs from confirmations.
type DialogKind int

const (
	DialogError DialogKind = iota
	DialogSuccess
)

// MsgMarkedComplete confirms a successful mark-complete.
const MsgMarkedComplete = "Task marked as complete!"

// Dialog is a modal message the view must show before accepting further input.
type Dialog struct {
	Kind    DialogKind
	Title   string
	Message string
}

// ErrorDialog builds a dialog titled "Error".
func ErrorDialog(message string) *Dialog {
	return &Dialog{Kind: DialogError, Title: "Error", Message: message}
}

// SuccessDialog builds a dialog titled "Success".
func SuccessDialog(message string) *Dialog {
	return &Dialog{Kind: DialogSuccess, Title: "Success", Message: message}
}

// IsError reports whether d reports a failure.
func (d *Dialog) IsError() bool {
	return d != nil && d.Kind == DialogError
}
