// File: services/assistant/prompt.go
package assistant

import (
	"fmt"
	"strings"

	"luxdrive/services/catalog"
)

// BuildSystemPrompt renders the concierge persona plus a static snapshot of
// the fleet. The snapshot is taken once at gateway construction and is not
// kept in sync with later catalog changes.
func BuildSystemPrompt(store *catalog.Store) string {
	var sb strings.Builder
	sb.WriteString("You are Lux, a helpful and sophisticated AI assistant for LuxDrive, a premium car rental service.\n")
	sb.WriteString("Your tone is professional, concise, and helpful.\n")
	sb.WriteString("You can help users pick a car based on their needs (Speed, Comfort, Family, Eco-friendly).\n\n")
	sb.WriteString("The available fleet includes:\n")

	for _, v := range store.Vehicles() {
		trait := ""
		if len(v.Features) > 0 {
			trait = v.Features[0] + ", "
		}
		sb.WriteString(fmt.Sprintf("- %s %s (%s, %s$%.0f/day)\n", v.Brand, v.Name, v.Category, trait, v.PricePerDay))
	}

	sb.WriteString("\nKeep responses short (under 50 words) unless asked for details.\n")
	return sb.String()
}
