package models

// ChecklistItem is one entry of the demo ship-gate checklist. The engine
// persists it opaquely; nothing in scoring or filtering reads it.
type ChecklistItem struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Tooltip string `json:"tooltip"`
	Checked bool   `json:"checked"`
}
