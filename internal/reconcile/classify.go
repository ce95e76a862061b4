package reconcile

// Plan is the outcome of classifying local records against the remote set
// for a push. It is pure data: nothing has been sent anywhere yet, so a
// caller can render a preview, apply the plan, or drop it.
type Plan struct {
	// New are local records with no remote counterpart.
	New []FlatRecord

	// Unchanged matched a remote record field for field.
	Unchanged []FlatRecord

	// Modified matched a remote record but differ in at least one field.
	Modified []ModifiedRecord

	// Orphaned are remote records no local task maps to.
	Orphaned []RemoteRecord
}

// Changes returns the number of mutating remote operations the plan implies.
func (p *Plan) Changes() int {
	return len(p.New) + len(p.Modified) + len(p.Orphaned)
}

// ModifiedRecord pairs a local record with the remote row it will update.
type ModifiedRecord struct {
	Local  FlatRecord
	Remote RemoteRecord

	// Changed holds only the differing fields, keyed by remote field name
	// and carrying the local value, ready to send as the update payload.
	Changed map[string]any
}

// Classify compares local records against the remote set for a push.
// Local is authoritative: every local record lands in exactly one of New,
// Unchanged or Modified, and remote rows nothing matched become Orphaned.
// Records sharing a key resolve to the first one seen; remote rows with an
// empty key are ignored.
func Classify(local []FlatRecord, remote []RemoteRecord, opts Options) *Plan {
	remoteByKey := make(map[string]RemoteRecord, len(remote))
	for _, r := range remote {
		if _, ok := remoteByKey[r.Key]; !ok && r.Key != "" {
			remoteByKey[r.Key] = r
		}
	}

	plan := &Plan{}
	matched := make(map[string]bool)
	for _, l := range local {
		r, ok := remoteByKey[l.Key]
		if !ok {
			plan.New = append(plan.New, l)
			continue
		}
		matched[l.Key] = true
		changed := changedFields(l, r.FlatRecord, opts.TimestampAware)
		if len(changed) == 0 {
			plan.Unchanged = append(plan.Unchanged, l)
		} else {
			plan.Modified = append(plan.Modified, ModifiedRecord{Local: l, Remote: r, Changed: changed})
		}
	}

	for _, r := range remote {
		if r.Key != "" && !matched[r.Key] {
			plan.Orphaned = append(plan.Orphaned, r)
		}
	}
	return plan
}
