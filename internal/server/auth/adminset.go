package auth

// AdminSet is the fixed set of privileged subject ids. It is built once at
// process start from configuration and never mutated afterwards, so it is
// safe for unsynchronized concurrent reads. Both the token Manager (to set
// the is_admin claim at issue time) and the authorizer interceptor (to gate
// privileged operations) share one instance.
type AdminSet struct {
	ids map[uint64]struct{}
}

// NewAdminSet builds an AdminSet from a list of subject ids.
func NewAdminSet(ids []uint64) *AdminSet {
	set := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return &AdminSet{ids: set}
}

// Contains reports whether id is a privileged subject.
func (s *AdminSet) Contains(id uint64) bool {
	if s == nil {
		return false
	}
	_, ok := s.ids[id]
	return ok
}
