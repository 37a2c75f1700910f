package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ThinkIshdeep/Chatur-Bazar/types"
)

// View implements tea.Model.
func (m PosModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.searchOn {
		b.WriteString(BoxStyle.Render("Search: " + m.search.View()))
		b.WriteString("\n")
	}

	catalog := m.renderCatalog()
	cart := m.renderCart()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, catalog, " ", cart))
	b.WriteString("\n")

	if modal := m.renderModal(); modal != "" {
		b.WriteString(modal)
		b.WriteString("\n")
	}

	b.WriteString(m.renderStatus())
	b.WriteString(HelpStyle.Render(
		"scan or hotkey 1-9 to sell · space checkout · / search · " +
			"↑/↓ select · del remove line · ctrl+r receive · ctrl+v voice · " +
			"ctrl+x clear · esc dismiss · ctrl+c quit"))
	return b.String()
}

func (m PosModel) renderHeader() string {
	title := TitleStyle.Render("ChaturBazar")
	if m.terminal != "" {
		title += " " + ValueStyle.Render(m.terminal)
	}
	revenue := fmt.Sprintf("%s %s",
		LabelStyle.Render("Revenue:"),
		ValueStyle.Render(m.money(m.eng.Revenue())))

	parts := []string{title, revenue}
	if streak := m.eng.Streak(); streak > 1 {
		parts = append(parts, StreakStyle.Render(fmt.Sprintf("🔥 ×%d", streak)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, strings.Join(parts, "   "))
}

func (m PosModel) renderCatalog() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Catalog"))
	b.WriteString("\n\n")

	products := m.eng.Products()
	query := strings.TrimSpace(m.search.Value())
	if m.searchOn && query != "" {
		products = m.eng.Search(query)
	}

	if len(products) == 0 {
		b.WriteString(HelpStyle.Render("no products"))
	}
	for _, p := range products {
		hotkey := " "
		if p.Hotkey != "" {
			hotkey = p.Hotkey
		}
		b.WriteString(fmt.Sprintf("%s %-20s %10s  %s\n",
			StreakStyle.Render("["+hotkey+"]"),
			ValueStyle.Render(truncate(p.Name, 20)),
			m.money(p.Price),
			StockStyle(p.Stock).Render(fmt.Sprintf("%3d in stock", p.Stock)),
		))
	}
	return BoxStyle.Render(b.String())
}

func (m PosModel) renderCart() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Cart"))
	b.WriteString("\n\n")

	lines := m.eng.Cart()
	if len(lines) == 0 {
		b.WriteString(HelpStyle.Render("empty — scan an item"))
	}
	for i, line := range lines {
		row := fmt.Sprintf("%-20s ×%-3d %10s",
			truncate(line.Name, 20), line.Quantity, m.money(line.Subtotal()))
		if i == m.selected && m.mode == modeSell {
			row = SelectedStyle.Render(row)
		} else {
			row = ValueStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	if len(lines) > 0 {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s %s",
			LabelStyle.Render("Total:"),
			TitleStyle.Render(m.money(m.eng.CartTotal()))))
	}
	return BoxStyle.Render(b.String())
}

func (m PosModel) renderModal() string {
	switch m.mode {
	case modePayment:
		return ModalStyle.Render(fmt.Sprintf(
			"%s\n\nAmount due: %s\n\n%s",
			TitleStyle.Render("Confirm payment"),
			TitleStyle.Render(m.money(m.eng.CartTotal())),
			HelpStyle.Render("space/enter confirm · esc cancel"),
		))

	case modeRestockAnalysing:
		pending, ok := m.eng.PendingReorder()
		if !ok {
			return ""
		}
		return ModalStyle.Render(fmt.Sprintf(
			"%s\n\n%s is down to %d units.\nAnalysing sales velocity…",
			WarningStyle.Render(reorderTitle(pending.Level)),
			pending.Product.Name, pending.Product.Stock,
		))

	case modeRestockConfirm:
		pending, ok := m.eng.PendingReorder()
		if !ok {
			return ""
		}
		return ModalStyle.Render(fmt.Sprintf(
			"%s\n\n%s is down to %d units.\nReorder quantity: %s\n\n%s",
			WarningStyle.Render(reorderTitle(pending.Level)),
			pending.Product.Name, pending.Product.Stock,
			m.restockQty.View(),
			HelpStyle.Render("enter send reorder · esc dismiss"),
		))

	case modeNewItem:
		return ModalStyle.Render(fmt.Sprintf(
			"%s\n\nScan code %s is not in the catalog.\n\nName:     %s\nPrice:    %s\nCategory: %s\n\n%s",
			TitleStyle.Render("New product"),
			ValueStyle.Render(m.pendingCode),
			m.itemName.View(), m.itemPrice.View(), m.itemCategory.View(),
			HelpStyle.Render("tab next field · enter create and add · esc cancel"),
		))

	case modeReceive:
		return ModalStyle.Render(fmt.Sprintf(
			"%s\n\nProduct:  %s\nQuantity: %s\n\n%s",
			TitleStyle.Render("Receive stock"),
			m.receiveCode.View(), m.receiveQty.View(),
			HelpStyle.Render("tab next field · enter receive · esc cancel"),
		))

	case modeVoice:
		return ModalStyle.Render(fmt.Sprintf(
			"%s\n\n%s\n\n%s",
			TitleStyle.Render("Voice entry"),
			m.voiceInput.View(),
			HelpStyle.Render("enter add matched product · esc cancel"),
		))
	}
	return ""
}

func (m PosModel) renderStatus() string {
	var parts []string
	if n := m.cls.Buffered(); n > 0 {
		parts = append(parts, HelpStyle.Render(fmt.Sprintf("scanning… %d", n)))
	}
	if m.toast != "" {
		style := SuccessStyle
		if m.toastErr {
			style = ErrorStyle
		}
		parts = append(parts, style.Render(m.toast))
	}
	if len(parts) == 0 {
		return "\n"
	}
	return strings.Join(parts, "  ") + "\n"
}

func (m PosModel) money(v float64) string {
	return fmt.Sprintf("%s%.2f", m.currency, v)
}

func reorderTitle(level types.ReorderLevel) string {
	if level == types.ReorderCritical {
		return "Critical stock"
	}
	return "Low stock"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
