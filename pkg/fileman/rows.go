package fileman

import (
	"github.com/filetug/fileman/pkg/files"
	"github.com/rivo/tview"
)

const (
	nameColIndex     = 0
	sizeColIndex     = 1
	modifiedColIndex = 2
)

const (
	dirEmoji  = "📁 "
	fileEmoji = "📄 "
)

var _ tview.TableContent = (*EntryRows)(nil)

// EntryRows presents a directory listing to a tview.Table.
// Row 0 is the column header, entries start at row 1.
type EntryRows struct {
	tview.TableContentReadOnly
	Entries []files.Entry
	Err     error
}

func (r *EntryRows) set(entries []files.Entry, err error) {
	r.Entries = entries
	r.Err = err
}

func (r *EntryRows) GetRowCount() int {
	return 1 + max(len(r.Entries), 1)
}

func (r *EntryRows) GetColumnCount() int {
	return 3
}

// EntryAt returns the entry shown at the given table row.
func (r *EntryRows) EntryAt(row int) (files.Entry, bool) {
	i := row - 1
	if r.Err != nil || i < 0 || i >= len(r.Entries) {
		return files.Entry{}, false
	}
	return r.Entries[i], true
}

func (r *EntryRows) GetCell(row, col int) *tview.TableCell {
	if row == 0 {
		return r.getHeaderCell(col)
	}
	if r.Err != nil || len(r.Entries) == 0 {
		if row != 1 || col != nameColIndex {
			return nil
		}
		if r.Err != nil {
			return tview.NewTableCell(tview.Escape(r.Err.Error())).
				SetTextColor(Style.ErrorColor).
				SetSelectable(false)
		}
		return tview.NewTableCell("[::i]No entries[::-]").
			SetTextColor(Style.EmptyColor).
			SetSelectable(false)
	}
	entry, ok := r.EntryAt(row)
	if !ok {
		return nil
	}
	var cell *tview.TableCell
	switch col {
	case nameColIndex:
		prefix := fileEmoji
		if entry.IsDir {
			prefix = dirEmoji
		}
		cell = tview.NewTableCell(prefix + tview.Escape(entry.Name)).SetExpansion(1)
	case sizeColIndex:
		cell = tview.NewTableCell(entry.SizeText()).SetAlign(tview.AlignRight)
	case modifiedColIndex:
		cell = tview.NewTableCell(entry.ModifiedText).SetAlign(tview.AlignRight)
	default:
		return nil
	}
	return cell.SetTextColor(entryColor(entry)).SetReference(entry)
}

func (r *EntryRows) getHeaderCell(col int) *tview.TableCell {
	var text string
	switch col {
	case nameColIndex:
		text = "Name"
	case sizeColIndex:
		text = "Size"
	case modifiedColIndex:
		text = "Modified"
	default:
		return nil
	}
	cell := tview.NewTableCell(text).
		SetTextColor(Style.TableHeaderColor).
		SetSelectable(false)
	if col != nameColIndex {
		cell.SetAlign(tview.AlignRight)
	}
	return cell
}
