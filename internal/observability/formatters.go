// Package observability provides formatted terminal output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/healthjobfinder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxItemsToShow caps short lists inside a job card
	maxItemsToShow = 5
)

// Printer writes human-readable search results.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// postedAgo renders a job's age the way listings show it.
func postedAgo(days int) string {
	switch days {
	case 0:
		return "today"
	case 1:
		return "1 day ago"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}

func verificationBadge(s types.VerificationStatus) string {
	switch s {
	case types.VerificationVerified:
		return "✓ verified"
	case types.VerificationLikely:
		return "~ likely genuine"
	default:
		return "? unverified"
	}
}

// PrintJobs outputs one card per job, most recent first as given.
func (p *Printer) PrintJobs(jobs []types.Job) {
	if len(jobs) == 0 {
		p.printBox("JOB LISTINGS", "No jobs matched your filters.")
		return
	}

	var sb strings.Builder
	for i, job := range jobs {
		fmt.Fprintf(&sb, "#%d  %s\n", i+1, job.Title)
		fmt.Fprintf(&sb, "    %s · %s\n", job.Company, job.Location)
		fmt.Fprintf(&sb, "    Posted %s (%s) on %s · %s\n",
			postedAgo(job.DaysAgo), job.PostedDate, job.Source, verificationBadge(job.VerificationStatus))

		var flags []string
		if job.VisaSponsorshipAvailable {
			flags = append(flags, "visa sponsorship")
		}
		if job.InternationalApplicantsWelcome {
			flags = append(flags, "international applicants welcome")
		}
		if len(flags) > 0 {
			fmt.Fprintf(&sb, "    ✓ %s\n", strings.Join(flags, ", "))
		}

		if len(job.RequiredDocuments) > 0 {
			count := min(len(job.RequiredDocuments), maxItemsToShow)
			docs := strings.Join(job.RequiredDocuments[:count], ", ")
			if len(job.RequiredDocuments) > maxItemsToShow {
				docs += fmt.Sprintf(" (+%d more)", len(job.RequiredDocuments)-maxItemsToShow)
			}
			fmt.Fprintf(&sb, "    Documents: %s\n", docs)
		}
		if job.ApplyLink != "" {
			fmt.Fprintf(&sb, "    Apply: %s\n", job.ApplyLink)
		}
		if i < len(jobs)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(fmt.Sprintf("JOB LISTINGS (%d)", len(jobs)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSources lists the web pages the answer was grounded on.
func (p *Printer) PrintSources(sources []types.GroundingSource) {
	if len(sources) == 0 {
		return
	}

	var sb strings.Builder
	for i, src := range sources {
		fmt.Fprintf(&sb, "%d. %s\n   %s\n", i+1, src.Title, src.URI)
	}
	p.printBox("SOURCES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintInsights writes the Markdown analysis unboxed, since it wraps freely.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintInsights(markdown string) {
	p.printBox("MARKET INSIGHTS", "")
	fmt.Fprintln(p.out, strings.TrimSpace(markdown))
	fmt.Fprintln(p.out)
}

// PrintError outputs a classified failure under its display title.
func (p *Printer) PrintError(err *types.AppError) {
	if err == nil {
		return
	}
	p.printBox(strings.ToUpper(err.Title()), err.Message)
}

// PrintFilters outputs a filter selection. saved reports whether it came from the store.
func (p *Printer) PrintFilters(f types.FilterState, saved bool) {
	orAny := func(items []string) string {
		if len(items) == 0 {
			return "any"
		}
		return strings.Join(items, ", ")
	}
	yesNo := func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Keywords:        %s\n", f.Keywords)
	fmt.Fprintf(&sb, "Roles:           %s\n", orAny(f.Roles))
	fmt.Fprintf(&sb, "Countries:       %s\n", orAny(f.Countries))
	fmt.Fprintf(&sb, "Visa required:   %s\n", yesNo(f.VisaSponsorshipRequired))
	fmt.Fprintf(&sb, "International:   %s\n", yesNo(f.InternationalApplicantsOnly))
	fmt.Fprintf(&sb, "Date posted:     %s", f.DatePostedFilter)

	title := "FILTERS (defaults)"
	if saved {
		title = "SAVED FILTERS"
	}
	p.printBox(title, sb.String())
}
