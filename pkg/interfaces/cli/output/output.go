package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jmorelli/restock/pkg/application/services/orchestration"
	"github.com/jmorelli/restock/pkg/domain/entities"
)

// Section selects which part of a session plan to render
type Section string

const (
	SectionDemand   Section = "demand"
	SectionStats    Section = "stats"
	SectionCoverage Section = "coverage"
	SectionOrder    Section = "order"
)

// Config holds configuration for output generation
type Config struct {
	Format   string
	Sections []Section // nil = all sections
}

// Generate renders the session plan in the configured format
func Generate(w io.Writer, plan *orchestration.SessionPlan, config Config) error {
	switch config.Format {
	case "", "text":
		return generateText(w, plan, config)
	case "json":
		return generateJSON(w, plan, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

func (c Config) wants(section Section) bool {
	if len(c.Sections) == 0 {
		return true
	}
	for _, s := range c.Sections {
		if s == section {
			return true
		}
	}
	return false
}

func generateText(w io.Writer, plan *orchestration.SessionPlan, config Config) error {
	if config.wants(SectionStats) {
		writeStats(w, plan.Stats)
	}
	if config.wants(SectionDemand) {
		writeDemand(w, plan.Demand)
	}
	if config.wants(SectionCoverage) {
		writeCoverage(w, plan.Coverage)
	}
	if config.wants(SectionOrder) {
		writeOrder(w, plan.Order)
	}
	return nil
}

func writeStats(w io.Writer, stats entities.ExtractionStats) {
	fmt.Fprintf(w, "📊 Extraction Summary\n")
	fmt.Fprintf(w, "=====================\n\n")
	fmt.Fprintf(w, "Groups: %d total, %d extracted, %d warnings, %d errors\n",
		stats.TotalGroups, stats.ExtractedGroups, stats.WarningGroups, stats.ErrorGroups)
	fmt.Fprintf(w, "Activities: %d, Line Items: %d\n", stats.TotalActivities, stats.TotalItems)
	fmt.Fprintf(w, "AI Cost: %s\n\n", stats.TotalCost.StringFixed(4))
}

func writeDemand(w io.Writer, demand []entities.DemandItem) {
	fmt.Fprintf(w, "📋 Consolidated Demand (%d products)\n", len(demand))
	if len(demand) == 0 {
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintf(w, "%-15s %-8s %-8s %-30s\n", "Product", "Qty", "Sources", "Description")
	fmt.Fprintf(w, "%-15s %-8s %-8s %-30s\n", "---------------", "--------", "--------", "------------------------------")
	for _, item := range demand {
		fmt.Fprintf(w, "%-15s %-8d %-8d %-30s\n",
			item.ProductCode, item.DemandQty, len(item.Sources), deref(item.Description))
	}
	fmt.Fprintln(w)
}

func writeCoverage(w io.Writer, coverage entities.CoverageResult) {
	summary := coverage.Summary
	fmt.Fprintf(w, "📷 Station Coverage: %d/%d captured (%d%%)\n",
		summary.CoveredCount, summary.TotalCount, summary.Percentage)
	if len(coverage.Items) == 0 {
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintf(w, "%-15s %-10s %-10s %-8s %-8s %-8s\n", "Product", "Captured", "Station", "On Hand", "Min", "Max")
	fmt.Fprintf(w, "%-15s %-10s %-10s %-8s %-8s %-8s\n", "---------------", "----------", "----------", "--------", "--------", "--------")
	for _, item := range coverage.Items {
		captured := "no"
		if item.IsCaptured {
			captured = "yes"
		}
		station := item.StationID
		if station == "" {
			station = "-"
		}
		fmt.Fprintf(w, "%-15s %-10s %-10s %-8d %-8d %-8d\n",
			item.ProductCode, captured, station, item.OnHandQty, item.MinQty, item.MaxQty)
	}
	fmt.Fprintln(w)
}

func writeOrder(w io.Writer, order entities.OrderResult) {
	fmt.Fprintf(w, "🛒 Recommended Order (%d products)\n", len(order.Items))
	if len(order.Items) == 0 {
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintf(w, "%-15s %-8s %-8s %-8s %-8s %-12s\n", "Product", "Demand", "On Hand", "Order", "Max", "Flags")
	fmt.Fprintf(w, "%-15s %-8s %-8s %-8s %-8s %-12s\n", "---------------", "--------", "--------", "--------", "--------", "------------")
	for _, item := range order.Items {
		flags := ""
		if item.ExceedsMax {
			flags = "EXCEEDS MAX"
		}
		if !item.IsCaptured {
			if flags != "" {
				flags += ", "
			}
			flags += "uncaptured"
		}
		fmt.Fprintf(w, "%-15s %-8d %-8d %-8d %-8d %-12s\n",
			item.ProductCode, item.DemandQty, item.OnHandQty, item.RecommendedOrderQty, item.MaxQty, flags)
	}

	if len(order.Skipped) > 0 {
		fmt.Fprintf(w, "\n⚠️  Skipped:\n")
		for _, skipped := range order.Skipped {
			fmt.Fprintf(w, "  %s: %s\n", skipped.ProductCode, skipped.Reason)
		}
	}
	fmt.Fprintln(w)
}

func generateJSON(w io.Writer, plan *orchestration.SessionPlan, config Config) error {
	payload := make(map[string]any)
	if config.wants(SectionDemand) {
		payload["demand"] = plan.Demand
	}
	if config.wants(SectionStats) {
		payload["stats"] = plan.Stats
	}
	if config.wants(SectionCoverage) {
		payload["coverage"] = plan.Coverage
	}
	if config.wants(SectionOrder) {
		payload["order"] = plan.Order
	}
	payload["planned_at"] = plan.PlannedAt

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
