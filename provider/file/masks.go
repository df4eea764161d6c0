package file

import "github.com/hostspec/hostspec/model"

// Octal permission masks used by the readable/writable-by-whom
// algorithm: explicit Owner/Group/Others qualifiers bit-test against
// their own mask; no qualifier bit-tests against the combined mask.
const (
	maskOwnerRead   = 0o400
	maskOwnerWrite  = 0o200
	maskGroupRead   = 0o040
	maskGroupWrite  = 0o020
	maskOthersRead  = 0o004
	maskOthersWrite = 0o002
	maskAnyRead     = 0o444
	maskAnyWrite    = 0o222
)

// identity is the subset of a resolved user's identity the whom
// algorithm needs: primary uid/gid plus supplementary group ids.
type identity struct {
	uid    uint32
	gid    uint32
	groups []uint32
}

func (id identity) memberOf(gid uint32) bool {
	if id.gid == gid {
		return true
	}
	for _, g := range id.groups {
		if g == gid {
			return true
		}
	}
	return false
}

// accessKind selects which pair of masks bitTest uses.
type accessKind int

const (
	accessRead accessKind = iota
	accessWrite
)

func masksFor(kind accessKind) (owner, group, others, any uint32) {
	if kind == accessWrite {
		return maskOwnerWrite, maskGroupWrite, maskOthersWrite, maskAnyWrite
	}
	return maskOwnerRead, maskGroupRead, maskOthersRead, maskAnyRead
}

// bitTest applies the whom algorithm against a file's mode, owning uid
// and gid. resolveUser resolves a named Whom User's
// identity — a local os/user lookup for the inline provider, an
// "id"-based shell round trip for the shell providers.
func bitTest(kind accessKind, mode, fileUID, fileGID uint32, whom *model.Whom, resolveUser func(name string) (identity, error)) (bool, error) {
	ownerMask, groupMask, othersMask, anyMask := masksFor(kind)

	if whom == nil {
		return mode&anyMask != 0, nil
	}

	switch whom.Kind {
	case model.WhomOwnerKind:
		return mode&ownerMask != 0, nil
	case model.WhomGroupKind:
		return mode&groupMask != 0, nil
	case model.WhomOthersKind:
		return mode&othersMask != 0, nil
	case model.WhomUserKind:
		id, err := resolveUser(whom.User)
		if err != nil {
			return false, err
		}
		if id.uid == fileUID {
			return mode&ownerMask != 0, nil
		}
		if id.memberOf(fileGID) {
			return mode&groupMask != 0, nil
		}
		return mode&othersMask != 0, nil
	default:
		return mode&anyMask != 0, nil
	}
}
