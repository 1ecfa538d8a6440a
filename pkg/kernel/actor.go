package kernel

// ActorRole identifies which side of the portal a user belongs to.
type ActorRole string

const (
	RoleJobSeeker ActorRole = "Job Seeker"
	RoleEmployer  ActorRole = "Employer"
)

func (r ActorRole) String() string { return string(r) }

// IsValid reports whether the role is one of the two portal roles.
func (r ActorRole) IsValid() bool {
	return r == RoleJobSeeker || r == RoleEmployer
}

// ActorRef is an embedded reference to a party of an application: an opaque
// user id tagged with the role the user played at the time the record was
// written.
type ActorRef struct {
	User UserID    `json:"user"`
	Role ActorRole `json:"role"`
}

// NewActorRef builds a role-tagged reference to a user.
func NewActorRef(user UserID, role ActorRole) ActorRef {
	return ActorRef{User: user, Role: role}
}

func (a ActorRef) IsEmpty() bool { return a.User.IsEmpty() }
