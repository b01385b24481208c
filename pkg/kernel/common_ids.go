package kernel

import "strconv"

type UserID int64

func (u UserID) String() string { return strconv.FormatInt(int64(u), 10) }
func (u UserID) IsEmpty() bool  { return u == 0 }

// ParseUserID parses a decimal user id. Zero and negatives are rejected.
func ParseUserID(s string) (UserID, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return UserID(n), true
}

type JournalID int64

func (j JournalID) String() string { return strconv.FormatInt(int64(j), 10) }

type SubmissionID int64

func (s SubmissionID) String() string { return strconv.FormatInt(int64(s), 10) }

type AuthorID int64

// Locale is a platform locale code such as en_US
type Locale string

func (l Locale) String() string { return string(l) }
