package certificate

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidCode = errors.New("invalid certificate code")

const (
	DefaultPrefix = "CERT"
	fragmentLen   = 6
)

var codeRegex = regexp.MustCompile(`^[A-Z0-9]{1,16}-[0-9A-F]{6}-[0-9A-F]{6}-[0-9A-Z]{1,13}$`)

type Code string

// GenerateCode builds PREFIX-COURSE-USER-TIME where COURSE and USER are the first six
// hex characters of each id and TIME is the issuance instant in base-36 milliseconds.
func GenerateCode(prefix string, courseID, userID uuid.UUID, issuedAt time.Time) Code {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	parts := []string{
		strings.ToUpper(prefix),
		fragment(courseID),
		fragment(userID),
		strings.ToUpper(strconv.FormatInt(issuedAt.UnixMilli(), 36)),
	}
	return Code(strings.Join(parts, "-"))
}

func fragment(id uuid.UUID) string {
	return strings.ToUpper(id.String()[:fragmentLen])
}

// ParseCode normalizes user input from verification links and forms.
func ParseCode(raw string) (Code, error) {
	c := strings.ToUpper(strings.TrimSpace(raw))
	if !codeRegex.MatchString(c) {
		return "", ErrInvalidCode
	}
	return Code(c), nil
}

func (c Code) String() string { return string(c) }

// Matches reports whether the code's id fragments belong to the given course and user.
func (c Code) Matches(courseID, userID uuid.UUID) bool {
	parts := strings.Split(string(c), "-")
	if len(parts) != 4 {
		return false
	}
	return parts[1] == fragment(courseID) && parts[2] == fragment(userID)
}
