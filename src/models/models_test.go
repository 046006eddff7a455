package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTenantGraceMinutes(t *testing.T) {
	assert.Equal(t, DefaultLateGraceMinutes, (&Tenant{}).GraceMinutes())
	assert.Equal(t, DefaultLateGraceMinutes, (&Tenant{LateGraceMinutes: -5}).GraceMinutes())
	assert.Equal(t, 15, (&Tenant{LateGraceMinutes: 15}).GraceMinutes())
}

func TestGatheringRadius(t *testing.T) {
	assert.Equal(t, DefaultGeofenceRadius, (&Gathering{}).Radius())
	assert.Equal(t, 250.0, (&Gathering{RadiusMeters: 250}).Radius())
}

func TestGatheringRosterEntryFor(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	g := &Gathering{Roster: []RosterEntry{
		{ParticipantID: a, Mode: LocationPhysical},
		{ParticipantID: b, Mode: LocationRemote},
	}}

	entry := g.RosterEntryFor(b)
	assert.NotNil(t, entry)
	assert.Equal(t, LocationRemote, entry.Mode)

	assert.Nil(t, g.RosterEntryFor(primitive.NewObjectID()))

	// ต้องได้ pointer เข้า slice จริง แก้ค่าแล้วต้องสะท้อนกลับ
	entry.AttendanceStatus = AttendancePresent
	assert.Equal(t, AttendancePresent, g.Roster[1].AttendanceStatus)
}

func TestGatheringGeofenceRequired(t *testing.T) {
	physicalEntry := &RosterEntry{Mode: LocationPhysical}
	remoteEntry := &RosterEntry{Mode: LocationRemote}

	assert.True(t, (&Gathering{LocationMode: LocationPhysical}).GeofenceRequired(remoteEntry))
	assert.False(t, (&Gathering{LocationMode: LocationRemote}).GeofenceRequired(physicalEntry))

	hybrid := &Gathering{LocationMode: LocationHybrid}
	assert.True(t, hybrid.GeofenceRequired(physicalEntry))
	assert.False(t, hybrid.GeofenceRequired(remoteEntry))
	assert.False(t, hybrid.GeofenceRequired(nil))
}

func TestParticipantSelfCheckinBarred(t *testing.T) {
	assert.False(t, (&Participant{Role: RoleMember}).IsSelfCheckinBarred())
	assert.True(t, (&Participant{Role: RoleAdmin}).IsSelfCheckinBarred())
	assert.True(t, (&Participant{Role: RoleOwner}).IsSelfCheckinBarred())
}

func TestPaginationNormalize(t *testing.T) {
	p := PaginationParams{Page: 0, Limit: 0}
	p.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, "_id", p.SortBy)

	p = PaginationParams{Page: 3, Limit: 500, SortBy: "createdAt"}
	p.Normalize()
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, "createdAt", p.SortBy)
}

func TestPaginatedResponse(t *testing.T) {
	params := PaginationParams{Page: 2, Limit: 10}
	resp := NewPaginatedResponse([]string{"a"}, 25, params)

	assert.Equal(t, 3, resp.TotalPages)
	assert.True(t, resp.HasNext)
	assert.True(t, resp.HasPrevious)
	assert.Equal(t, int64(10), params.GetSkip())
}
