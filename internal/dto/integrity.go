package dto

// IntegrityReport lists dangling references left behind by deletes, which do
// not cascade. The report is informational; nothing is repaired.
type IntegrityReport struct {
	OrphanedProjectMembers      []OrphanedRef `json:"orphanedProjectMembers"`
	OrphanedProjectPublications []OrphanedRef `json:"orphanedProjectPublications"`
	OrphanedNewsAuthors         []OrphanedRef `json:"orphanedNewsAuthors"`
	Clean                       bool          `json:"clean"`
}

// OrphanedRef identifies one dangling reference.
type OrphanedRef struct {
	SourceID string `json:"sourceId"`
	TargetID string `json:"targetId"`
}
