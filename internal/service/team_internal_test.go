package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSortUserIDs(t *testing.T) {
	t.Run("decimal IDs sort numerically", func(t *testing.T) {
		ids := []string{"1000", "90", "500", "007"}
		sortUserIDs(ids)
		assert.Equal(t, []string{"007", "90", "500", "1000"}, ids)
	})

	t.Run("other IDs sort lexically", func(t *testing.T) {
		ids := []string{"b", "aa", "ab"}
		sortUserIDs(ids)
		assert.Equal(t, []string{"aa", "ab", "b"}, ids)
	})

	t.Run("decimal IDs come before the rest", func(t *testing.T) {
		ids := []string{"bob", "42", "alice", "7"}
		sortUserIDs(ids)
		assert.Equal(t, []string{"7", "42", "alice", "bob"}, ids)
	})
}

func TestNextCaptainIgnoresLength(t *testing.T) {
	team := newTeam(1, "zed", "Zed", time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), time.Hour)
	team.Members["b"] = "B"
	team.Members["aa"] = "AA"
	delete(team.Members, "zed")

	assert.Equal(t, "aa", team.nextCaptain())
}
