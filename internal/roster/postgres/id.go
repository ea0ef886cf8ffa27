package postgres

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/EmpoweredVote/mdb-finder/internal/names"
)

// DefaultNamespace seeds the v5 ids of imported rows.
var DefaultNamespace = uuid.MustParse("6f3b2c1e-8d4a-5b7e-9c2f-1a0d3e4b5c6d")

func v5(ns uuid.UUID, name string) uuid.UUID {
	return uuid.NewSHA1(ns, []byte(name))
}

// The position is part of every key: the same person may legitimately hold
// two rows (direct and list mandate), and re-importing the same file must
// reproduce the same ids.

func MemberID(ns uuid.UUID, position int, mdbID, name string) uuid.UUID {
	key := mdbID
	if key == "" {
		key = names.Key(name)
	}
	return v5(ns, fmt.Sprintf("member:%d:%s", position, key))
}

func ContactID(ns uuid.UUID, position int, name string) uuid.UUID {
	return v5(ns, fmt.Sprintf("contact:%d:%s", position, names.Key(name)))
}

func GenderID(ns uuid.UUID, position int, name string) uuid.UUID {
	return v5(ns, fmt.Sprintf("gender:%d:%s", position, names.Key(name)))
}

func LocalityID(ns uuid.UUID, position int, from, to string) uuid.UUID {
	return v5(ns, fmt.Sprintf("locality:%d:%s-%s", position, from, to))
}
