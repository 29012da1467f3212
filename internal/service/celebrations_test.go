package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"duesmanager/internal/model"
)

func TestNextOccurrence(t *testing.T) {
	today := day(2025, time.March, 10)

	assert.Equal(t, day(2025, time.March, 10), nextOccurrence(day(1980, time.March, 10), today))
	assert.Equal(t, day(2025, time.December, 1), nextOccurrence(day(1980, time.December, 1), today))
	assert.Equal(t, day(2026, time.January, 5), nextOccurrence(day(1980, time.January, 5), today))
	// 2026 is a common year.
	assert.Equal(t, day(2026, time.February, 28), nextOccurrence(day(2000, time.February, 29), today))
	assert.Equal(t, day(2028, time.February, 29), nextOccurrence(day(2000, time.February, 29), day(2028, time.January, 1)))
}

func TestUpcomingCelebrations(t *testing.T) {
	now := time.Date(2024, time.June, 15, 23, 30, 0, 0, time.UTC)
	members := []model.Member{
		{Email: "b@example.com", Name: "Bea", Birthday: day(1990, time.June, 20)},
		{Email: "a@example.com", Name: "Al", Birthday: day(1985, time.June, 15), Anniversary: day(2014, time.June, 18)},
		{Email: "c@example.com", Name: "Cy", Birthday: day(1990, time.August, 1)},
		{Email: "d@example.com", Name: "Di"},
	}

	got := upcomingCelebrations(members, now, 7)
	require.Len(t, got, 3)
	assert.Equal(t, Celebration{Email: "a@example.com", Name: "Al", Kind: CelebrationBirthday, Date: day(2024, time.June, 15), DaysAway: 0, Years: 39}, got[0])
	assert.Equal(t, CelebrationAnniversary, got[1].Kind)
	assert.Equal(t, 3, got[1].DaysAway)
	assert.Equal(t, 10, got[1].Years)
	assert.Equal(t, "Bea", got[2].Name)
	assert.Equal(t, 5, got[2].DaysAway)

	today := upcomingCelebrations(members, now, 0)
	require.Len(t, today, 1)
	assert.Equal(t, "Al", today[0].Name)

	assert.Len(t, upcomingCelebrations(members, now, -3), 1)
}

func TestMemberService_Celebrations(t *testing.T) {
	store := newSheetsStore()
	seedMember(t, store, model.Member{Email: "a@example.com", Name: "Al", Birthday: day(1985, time.June, 16)})
	seedMember(t, store, model.Member{Email: "b@example.com", Name: "Bo", Birthday: day(1985, time.June, 16), Status: model.MemberStatusInactive})

	got, err := newMemberService(store).Celebrations(t.Context(), 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Al", got[0].Name)
	assert.Equal(t, 1, got[0].DaysAway)
}
