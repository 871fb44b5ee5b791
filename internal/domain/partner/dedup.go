package partner

import "github.com/google/uuid"

// MergeGroup is one set of clients sharing a normalized name. The survivor
// is the first record encountered; the rest are absorbed and deleted.
type MergeGroup struct {
	Survivor *Client
	Absorbed []*Client
}

// MergePlan is the outcome of a dedup pass over a client list.
type MergePlan struct {
	Groups []MergeGroup
	// ChangedSurvivors are survivors that gained contact data from an
	// absorbed record and need to be written back.
	ChangedSurvivors []*Client
	// Deleted are the IDs of the absorbed records.
	Deleted []uuid.UUID
	// Redirects maps each absorbed client ID to its survivor's ID, for
	// re-pointing sale items that referenced the absorbed record.
	Redirects map[uuid.UUID]uuid.UUID
}

// HasWork reports whether the plan contains any merge to execute.
func (p MergePlan) HasWork() bool {
	return len(p.Deleted) > 0
}

// PlanMerge groups clients by normalized name and plans the merge of each
// duplicate group. The first record of a group survives; later records
// donate their contact fields to the survivor's empty slots (first
// non-empty wins) and are marked for deletion. The function mutates only
// the survivors it fills in; running it on an already-deduplicated list
// yields an empty plan.
func PlanMerge(clients []*Client) MergePlan {
	plan := MergePlan{
		Redirects: make(map[uuid.UUID]uuid.UUID),
	}

	byName := make(map[string]int)
	for _, client := range clients {
		key := client.NormalizedName()

		idx, seen := byName[key]
		if !seen {
			byName[key] = len(plan.Groups)
			plan.Groups = append(plan.Groups, MergeGroup{Survivor: client})
			continue
		}

		group := &plan.Groups[idx]
		group.Absorbed = append(group.Absorbed, client)

		if group.Survivor.AbsorbContact(client) && !containsClient(plan.ChangedSurvivors, group.Survivor) {
			plan.ChangedSurvivors = append(plan.ChangedSurvivors, group.Survivor)
		}

		plan.Deleted = append(plan.Deleted, client.ID)
		plan.Redirects[client.ID] = group.Survivor.ID
	}

	return plan
}

func containsClient(clients []*Client, target *Client) bool {
	for _, c := range clients {
		if c == target {
			return true
		}
	}
	return false
}
