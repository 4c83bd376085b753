package asyncload

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"
)

// BatchDigest summarizes a Schedule call for logging: a short
// content-based hash over the admitted job names plus the priority
// they were admitted at. Two batches that request the same jobs at the
// same priority hash identically, which is useful for deduplicating
// repeated "why did this schedule twice" log lines without having to
// compare slices.
func BatchDigest(jobs []*Job, priority Priority) (string, error) {
	names := namesOf(jobs)
	digest, err := hashstructure.Hash(struct {
		Names    []string
		Priority Priority
	}{Names: names, Priority: priority}, hashstructure.FormatV2, nil)
	if err != nil {
		return "", fmt.Errorf("asyncload: digest batch: %w", err)
	}
	return fmt.Sprintf("%x", digest), nil
}
