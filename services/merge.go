package services

import (
	"sort"

	"JournalGo/models"
)

// MergePlan describes how duplicate accounts sharing one canonical phone
// number reconcile: entries of every duplicate are reassigned to the
// primary and the duplicates are deleted.
type MergePlan struct {
	PrimaryID    string
	DuplicateIDs []string
}

// BuildMergePlan picks the primary among users sharing a canonical phone
// number: earliest creation time, ID as the tie-break. Pure; the input
// slice is not mutated. The second return is false when there is nothing
// to merge.
func BuildMergePlan(users []models.User) (MergePlan, bool) {
	if len(users) <= 1 {
		return MergePlan{}, false
	}

	ordered := make([]models.User, len(users))
	copy(ordered, users)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].CreatedAt.Equal(ordered[j].CreatedAt) {
			return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
		}
		return ordered[i].ID < ordered[j].ID
	})

	plan := MergePlan{PrimaryID: ordered[0].ID}
	for _, u := range ordered[1:] {
		plan.DuplicateIDs = append(plan.DuplicateIDs, u.ID)
	}

	return plan, true
}
