package entities

// DefaultSpeed is used when a record does not declare one.
const DefaultSpeed = 30

// DefaultDexterity is assumed for tokens without a linked record.
const DefaultDexterity = 10

// ActionType is the action economy slot an ability declares.
type ActionType string

const (
	ActionTypeAction      ActionType = "action"
	ActionTypeBonusAction ActionType = "bonus_action"
	ActionTypeReaction    ActionType = "reaction"
)

// ActionRecord is a declared character action or monster ability.
type ActionRecord struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Type        ActionType `json:"type,omitempty"`
}

// SpellRecord is a spell known by a character.
type SpellRecord struct {
	Key         string `json:"key,omitempty"`
	Name        string `json:"name"`
	Level       int    `json:"level"`
	CastingTime string `json:"casting_time"`
	Range       string `json:"range"`
	Description string `json:"description,omitempty"`
}

// CharacterRecord is the part of a character sheet the board reads.
type CharacterRecord struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	OwnerID   string         `json:"owner_id,omitempty"`
	Dexterity int            `json:"dexterity"`
	Speed     int            `json:"speed,omitempty"`
	MaxHP     int            `json:"max_hp,omitempty"`
	Actions   []ActionRecord `json:"actions,omitempty"`
	Spells    []SpellRecord  `json:"spells,omitempty"`
}

// EnemyRecord is a monster stat block. MonsterKey links it to the catalog.
type EnemyRecord struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	MonsterKey string         `json:"monster_key,omitempty"`
	Dexterity  int            `json:"dexterity"`
	Speed      int            `json:"speed,omitempty"`
	MaxHP      int            `json:"max_hp,omitempty"`
	Actions    []ActionRecord `json:"actions,omitempty"`
}

// SpeedOrDefault returns speed, or DefaultSpeed when unset.
func SpeedOrDefault(speed int) int {
	if speed <= 0 {
		return DefaultSpeed
	}
	return speed
}
