//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// Tab selects which view, and therefore which request flow, is active.
type Tab string

const (
	TabListings  Tab = "listings"
	TabInsights  Tab = "insights"
	TabResources Tab = "resources"
)

// ParseTab converts s to a Tab. An empty string selects TabListings.
func ParseTab(s string) (Tab, error) {
	switch Tab(s) {
	case "":
		return TabListings, nil
	case TabListings, TabInsights, TabResources:
		return Tab(s), nil
	}
	return "", fmt.Errorf("unknown tab %q", s)
}
