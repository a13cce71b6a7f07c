package reconcile

// JobName derives the canonical name of the Logpush job for a dataset on a
// zone. Names are deterministic so a rerun recognizes the jobs it created
// earlier; this naming convention is the sole duplicate-detection mechanism.
func JobName(dataset, zoneName string) string {
	return "logpush_" + dataset + "_" + zoneName
}
