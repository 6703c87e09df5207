package models

import (
	"github.com/allbin/ttynamed"
	"github.com/allbin/ttynamed/internal/tui/keys"
	"github.com/allbin/ttynamed/internal/tui/styles"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/evertras/bubble-table/table"
)

const (
	columnKeyPath    = "path"
	columnKeyVendor  = "vendor"
	columnKeyProduct = "product"
	columnKeySerial  = "serial"
)

// PickerModel lets the user select one of the attached serial devices.
type PickerModel struct {
	table    table.Model
	devices  []ttynamed.Device
	keys     keys.PickerKeys
	help     help.Model
	selected string
}

func NewPickerModel(devices []ttynamed.Device) *PickerModel {
	rows := make([]table.Row, 0, len(devices))
	for _, dev := range devices {
		rows = append(rows, table.NewRow(table.RowData{
			columnKeyPath:    dev.Path,
			columnKeyVendor:  orDash(dev.Attrs.VendorID),
			columnKeyProduct: orDash(dev.Attrs.ProductID),
			columnKeySerial:  orDash(dev.Attrs.SerialNumber),
		}))
	}

	t := table.New([]table.Column{
		table.NewColumn(columnKeyPath, "Device", 18),
		table.NewColumn(columnKeyVendor, "Vendor", 8),
		table.NewColumn(columnKeyProduct, "Product", 9),
		table.NewColumn(columnKeySerial, "Serial", 22),
	}).
		WithRows(rows).
		Focused(true).
		HeaderStyle(styles.TableHeaderStyle).
		WithBaseStyle(styles.TableBaseStyle)

	return &PickerModel{
		table:   t,
		devices: devices,
		keys:    keys.NewPickerKeys(),
		help:    help.New(),
	}
}

func (m *PickerModel) Init() tea.Cmd {
	return nil
}

func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			if path, ok := m.table.HighlightedRow().Data[columnKeyPath].(string); ok {
				m.selected = path
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *PickerModel) View() string {
	return styles.TitleStyle.Render("Select a device") + "\n" +
		m.table.View() + "\n" +
		styles.HelpStyle.Render(m.help.View(m.keys))
}

// Selected returns the chosen device path, or "" if the picker was
// cancelled.
func (m *PickerModel) Selected() string {
	return m.selected
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
