package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shekharsomani98/hr-recruitment-assistant/internal/ingestion"
)

func TestMatchCommand_RequiresCandidateFlags(t *testing.T) {
	matchCandidateID = ""
	matchCandidateIDs = nil
	t.Cleanup(func() {
		matchCandidateID = ""
		matchCandidateIDs = nil
	})

	err := runMatch(matchCmd, nil)
	assert.ErrorContains(t, err, "either --candidate or --candidates")
}

func TestMatchCommand_CandidateFlagsMutuallyExclusive(t *testing.T) {
	matchCandidateID = "00000000-0000-0000-0000-000000000001"
	matchCandidateIDs = []string{"00000000-0000-0000-0000-000000000002"}
	t.Cleanup(func() {
		matchCandidateID = ""
		matchCandidateIDs = nil
	})

	err := runMatch(matchCmd, nil)
	assert.ErrorContains(t, err, "mutually exclusive")
}

func TestIngestResumesCommand_NameRequiresSingleFile(t *testing.T) {
	resumeName = "Jane Doe"
	t.Cleanup(func() { resumeName = ingestion.AutoName })

	err := runIngestResumes(ingestResumesCmd, []string{"a.txt", "b.txt"})
	assert.ErrorContains(t, err, "single resume file")
}

func TestRankCommand_InvalidJobID(t *testing.T) {
	rankJobID = "not-a-uuid"
	t.Cleanup(func() { rankJobID = "" })

	err := runRank(rankCmd, nil)
	assert.ErrorContains(t, err, "invalid job ID")
}
