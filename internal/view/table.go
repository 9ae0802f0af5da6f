package view

// Row is one table line. Cells are pre-formatted; the id never renders as a cell.
type Row struct {
	ID    string
	Cells []string

	EditURL string
	// DeleteURL is posted to; Confirm, when set, asks the browser first.
	DeleteURL string
	Confirm   string

	// StatusURL and StatusOptions render an inline status select.
	StatusURL     string
	StatusOptions []Option
}

type Option struct {
	Value    string
	Label    string
	Selected bool
}

type Table struct {
	Headers []string
	Rows    []Row
	// Filter is posted back by the row forms so a mutation can return to
	// the same filtered list.
	Filter string
}

// HasActions reports whether an Actions column is needed.
func (t Table) HasActions() bool {
	for _, r := range t.Rows {
		if r.EditURL != "" || r.DeleteURL != "" || r.StatusURL != "" {
			return true
		}
	}
	return false
}

// Options builds select options from values, marking selected.
func Options(values []string, selected string, withAll bool) []Option {
	out := make([]Option, 0, len(values)+1)
	if withAll {
		out = append(out, Option{Value: "", Label: "All", Selected: selected == ""})
	}
	for _, v := range values {
		out = append(out, Option{Value: v, Label: Title(v), Selected: v == selected})
	}
	return out
}

// Modal wraps a dialog that is open when the page was requested for it.
type Modal struct {
	Open     bool
	Title    string
	CloseURL string
}
