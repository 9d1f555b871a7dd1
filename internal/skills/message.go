package skills

import "errors"

// Messages shown next to the skill input after a change.
const (
	MsgAdded   = "Skill added ✔"
	MsgUpdated = "Skill updated ✔"
	MsgRemoved = "Skill removed"
	MsgCleared = "All skills cleared"
)

// Message returns the user-facing text for an error from Add, Edit or
// Remove.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrEmpty):
		return "Skill cannot be empty."
	case errors.Is(err, ErrDuplicate):
		return "Skill already exists."
	case errors.Is(err, ErrInvalid):
		return "Skill name contains invalid characters."
	case errors.Is(err, ErrNotFound):
		return "That skill no longer exists."
	case err != nil:
		return "Something went wrong."
	}
	return ""
}
