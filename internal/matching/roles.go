package matching

import "alumni-connect-workers/internal/models"

type rolePair struct {
	requester models.Role
	candidate models.Role
}

type roleAffinity struct {
	points float64
	reason string
}

// roleAffinities lists complementary role pairs. Adding a role means adding
// rows here.
var roleAffinities = map[rolePair]roleAffinity{
	{models.RoleStudent, models.RoleAlumni}: {points: 20, reason: "Alumni mentor available"},
	{models.RoleAlumni, models.RoleStudent}: {points: 15, reason: "Student seeking guidance"},
}

var peerAffinity = roleAffinity{points: 10, reason: "Peer connection"}

// RoleAffinity returns the complementarity points for a requester/candidate
// role pair and the reason to show, or 0 and "" when the pair earns nothing.
func RoleAffinity(requester, candidate models.Role) (float64, string) {
	if a, ok := roleAffinities[rolePair{requester, candidate}]; ok {
		return a.points, a.reason
	}
	if requester == candidate {
		return peerAffinity.points, peerAffinity.reason
	}
	return 0, ""
}
