package config

import (
	"os"
	"strings"
)

// PlatformTipDebtDisabledFor returns true when a host is on legacy billing and
// should not accrue platform-tip debt settlements.
//
// Set via env:
// - LEGACY_BILLING_HOSTS="12,104,377"
func PlatformTipDebtDisabledFor(hostCollectiveId string) bool {
	raw := os.Getenv("LEGACY_BILLING_HOSTS")
	if strings.TrimSpace(raw) == "" {
		return false
	}
	for _, part := range strings.Split(raw, ",") {
		if strings.TrimSpace(part) == hostCollectiveId {
			return true
		}
	}
	return false
}

// HostFeeSharePercent is the platform's share of host fees, in percent.
//
// Set via env:
// - HOST_FEE_SHARE_PERCENT (default "15")
func HostFeeSharePercent() string {
	v := strings.TrimSpace(os.Getenv("HOST_FEE_SHARE_PERCENT"))
	if v == "" {
		return "15"
	}
	return v
}
