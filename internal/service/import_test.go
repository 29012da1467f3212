package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"duesmanager/internal/model"
)

func TestConvertImport(t *testing.T) {
	members, skipped := ConvertImport([]ImportRecord{
		{Name: " Alice ", Email: "Alice@Example.com", JoinDate: "15/03/2024", Birthday: "1990-06-15", Status: "On Leave"},
		{Name: "Bob", Email: "bob@example.com"},
		{Name: "No Email"},
		{Name: "Odd", Email: "odd@example.com", Status: "retired"},
	})

	require.Len(t, members, 2)
	assert.Equal(t, "alice@example.com", members[0].Email)
	assert.Equal(t, "Alice", members[0].Name)
	assert.Equal(t, model.MemberStatusOnLeave, members[0].Status)
	assert.Equal(t, day(2024, time.March, 15), members[0].JoinDate)
	assert.Equal(t, day(1990, time.June, 15), members[0].Birthday)
	assert.Equal(t, model.MemberStatusActive, members[1].Status)
	assert.True(t, members[1].JoinDate.IsZero())

	require.Len(t, skipped, 2)
	assert.Contains(t, skipped[1], "retired")
}
