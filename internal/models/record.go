package models

// Record is a row of the single wide table. Every domain entity is stored as
// one record, disambiguated by the composite (pk, sk) key; "households of
// user" is served by the (gsi1pk, gsi1sk) index. Attributes hold the
// per-entity JSON document.
type Record struct {
	PK         string  `db:"pk"`
	SK         string  `db:"sk"`
	GSI1PK     *string `db:"gsi1pk"`
	GSI1SK     *string `db:"gsi1sk"`
	EntityType string  `db:"entity_type"`
	Attributes []byte  `db:"attributes"`
}

// Entity type discriminators
const (
	EntityHousehold   = "HOUSEHOLD"
	EntityMembership  = "MEMBERSHIP"
	EntityTransaction = "TRANSACTION"
	EntityGoal        = "GOAL"
	EntityProfile     = "PROFILE"
	EntityInvite      = "INVITE"
)

// Sort key constants for singleton records under a partition
const (
	MetaSK    = "META"
	GoalSK    = "GOAL"
	ProfileSK = "PROFILE"
)

// TransactionSKPrefix prefixes every transaction sort key, keeping
// transactions of a household contiguous under its partition.
const TransactionSKPrefix = "TX#"

// MemberSKPrefix prefixes every membership sort key under a household.
const MemberSKPrefix = "MEMBER#"

func HouseholdPK(houseID string) string { return "HOUSE#" + houseID }

func InvitePK(inviteID string) string { return "INVITE#" + inviteID }

func UserPK(userID string) string { return "USER#" + userID }

func MemberSK(userID string) string { return MemberSKPrefix + userID }

func TransactionSK(date, txID string) string { return TransactionSKPrefix + date + "#" + txID }
