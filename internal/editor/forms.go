package editor

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/inhalebay/internal/models"
)

// CustomerForm edits a customer. Point balances are read-only and only move
// through ApplyPointsDelta.
type CustomerForm struct {
	ID              uuid.UUID `json:"-"`
	PhoneNumber     string    `json:"phone_number"`
	Name            string    `json:"name"`
	AvatarName      string    `json:"avatar_name"`
	MembershipLevel string    `json:"membership_level"`
	IsActive        bool      `json:"is_active"`
	PointsDelta     Number    `json:"points_delta"`

	CurrentPoints  int `json:"-"`
	LifetimePoints int `json:"-"`

	now func() time.Time
}

func NewCustomerForm(now func() time.Time) *CustomerForm {
	if now == nil {
		now = time.Now
	}
	f := &CustomerForm{now: now}
	f.Reset()
	return f
}

func (f *CustomerForm) Reset() {
	now := f.now
	*f = CustomerForm{IsActive: true, now: now}
}

func (f *CustomerForm) Load(c models.Customer) {
	f.ID = c.ID
	f.PhoneNumber = c.PhoneNumber
	f.Name = c.Name
	f.AvatarName = c.AvatarName
	f.MembershipLevel = c.MembershipLevel
	f.IsActive = c.IsActive
	f.CurrentPoints = c.CurrentPoints
	f.LifetimePoints = c.LifetimePoints
}

func (f *CustomerForm) Key() (uuid.UUID, bool) {
	return f.ID, f.ID != uuid.Nil
}

// ApplyPointsDelta moves current and lifetime points by the same signed
// amount. Input that is not a whole number is ignored. The delta input is
// cleared either way.
func (f *CustomerForm) ApplyPointsDelta(text string) bool {
	f.PointsDelta = ""
	s := strings.TrimSpace(text)
	if s == "" {
		s = "0"
	}
	delta, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	f.CurrentPoints += delta
	f.LifetimePoints += delta
	return true
}

func (f *CustomerForm) Validate() error {
	if f.MembershipLevel != "" && !models.ValidMembershipLevel(f.MembershipLevel) {
		return invalid("membership_level", "Unknown membership level: %s.", f.MembershipLevel)
	}
	return nil
}

// level is the membership level given to a new customer.
func (f *CustomerForm) level() string {
	if f.MembershipLevel == "" {
		return models.MembershipNew
	}
	return f.MembershipLevel
}

func (f *CustomerForm) Fields() map[string]any {
	return map[string]any{
		"phone_number":     f.PhoneNumber,
		"name":             f.Name,
		"avatar_name":      f.AvatarName,
		"current_points":   f.CurrentPoints,
		"lifetime_points":  f.LifetimePoints,
		"membership_level": f.MembershipLevel,
		"is_active":        f.IsActive,
	}
}

func (f *CustomerForm) Record(storeID uuid.UUID) *models.Customer {
	joined := f.now()
	return &models.Customer{
		StoreID:         storeID,
		PhoneNumber:     f.PhoneNumber,
		Name:            f.Name,
		AvatarName:      f.AvatarName,
		CurrentPoints:   f.CurrentPoints,
		LifetimePoints:  f.LifetimePoints,
		MembershipLevel: f.level(),
		IsActive:        f.IsActive,
		JoinDate:        &joined,
	}
}

// RewardForm edits a reward.
type RewardForm struct {
	ID           int64  `json:"-"`
	Title        string `json:"title"`
	RewardName   string `json:"reward_name"`
	UnlockPoints Number `json:"unlock_points"`
	RewardType   string `json:"reward_type"`
	DaysLeft     Number `json:"days_left"`

	unlockPoints *int
	daysLeft     *int
}

func NewRewardForm() *RewardForm { return &RewardForm{} }

func (f *RewardForm) Reset() { *f = RewardForm{} }

func (f *RewardForm) Load(r models.Reward) {
	f.ID = r.ID
	f.Title = r.Title
	f.RewardName = r.RewardName
	f.UnlockPoints = NumberOfPtr(r.UnlockPoints)
	f.RewardType = r.RewardType
	f.DaysLeft = NumberOfPtr(r.DaysLeft)
}

func (f *RewardForm) Key() (int64, bool) { return f.ID, f.ID != 0 }

func (f *RewardForm) Validate() error {
	var err error
	if f.unlockPoints, err = parseOptionalInt("unlock_points", "Unlock points", f.UnlockPoints); err != nil {
		return err
	}
	if f.daysLeft, err = parseOptionalInt("days_left", "Days left", f.DaysLeft); err != nil {
		return err
	}
	switch f.rewardType() {
	case models.RewardTypePromo, models.RewardTypeReward:
	default:
		return invalid("reward_type", "Unknown reward type: %s.", f.RewardType)
	}
	return nil
}

func (f *RewardForm) rewardType() string {
	if f.RewardType == "" {
		return models.RewardTypeReward
	}
	return f.RewardType
}

func (f *RewardForm) Fields() map[string]any {
	return map[string]any{
		"title":         f.Title,
		"reward_name":   f.RewardName,
		"unlock_points": f.unlockPoints,
		"reward_type":   f.rewardType(),
		"days_left":     f.daysLeft,
	}
}

func (f *RewardForm) Record(storeID uuid.UUID) *models.Reward {
	return &models.Reward{
		StoreID:      storeID,
		Title:        f.Title,
		RewardName:   f.RewardName,
		UnlockPoints: f.unlockPoints,
		RewardType:   f.rewardType(),
		DaysLeft:     f.daysLeft,
	}
}

// MemberTierForm edits a member tier.
type MemberTierForm struct {
	ID             int64  `json:"-"`
	MemberTierName string `json:"member_tier_name"`
	Description    string `json:"description"`
	ValueType      string `json:"value_type"`
	Value          Number `json:"value"`

	value int
}

func NewMemberTierForm() *MemberTierForm { return &MemberTierForm{} }

func (f *MemberTierForm) Reset() { *f = MemberTierForm{} }

func (f *MemberTierForm) Load(m models.MemberTier) {
	f.ID = m.ID
	f.MemberTierName = m.MemberTierName
	f.Description = m.Description
	f.ValueType = m.ValueType
	f.Value = NumberOf(m.Value)
}

func (f *MemberTierForm) Key() (int64, bool) { return f.ID, f.ID != 0 }

func (f *MemberTierForm) Validate() error {
	var err error
	if f.value, err = parseInt("value", "Value", f.Value); err != nil {
		return err
	}
	switch f.valueType() {
	case models.TierValueDays, models.TierValuePoints:
	default:
		return invalid("value_type", "Unknown value type: %s.", f.ValueType)
	}
	return nil
}

func (f *MemberTierForm) valueType() string {
	if f.ValueType == "" {
		return models.TierValuePoints
	}
	return f.ValueType
}

func (f *MemberTierForm) Fields() map[string]any {
	return map[string]any{
		"member_tier_name": f.MemberTierName,
		"description":      f.Description,
		"value_type":       f.valueType(),
		"value":            f.value,
	}
}

func (f *MemberTierForm) Record(storeID uuid.UUID) *models.MemberTier {
	return &models.MemberTier{
		StoreID:        storeID,
		MemberTierName: f.MemberTierName,
		Description:    f.Description,
		ValueType:      f.valueType(),
		Value:          f.value,
	}
}

// ScreenCodeForm edits a screen code.
type ScreenCodeForm struct {
	ID         int64  `json:"-"`
	ScreenName string `json:"screen_name"`
	ScreenCode Number `json:"screen_code"`

	code int
}

func NewScreenCodeForm() *ScreenCodeForm { return &ScreenCodeForm{} }

func (f *ScreenCodeForm) Reset() { *f = ScreenCodeForm{} }

func (f *ScreenCodeForm) Load(s models.ScreenCode) {
	f.ID = s.ID
	f.ScreenName = s.ScreenName
	f.ScreenCode = NumberOf(s.ScreenCode)
}

func (f *ScreenCodeForm) Key() (int64, bool) { return f.ID, f.ID != 0 }

func (f *ScreenCodeForm) Validate() error {
	var err error
	f.code, err = parseInt("screen_code", "Screen code", f.ScreenCode)
	return err
}

func (f *ScreenCodeForm) Fields() map[string]any {
	return map[string]any{
		"screen_name": f.ScreenName,
		"screen_code": f.code,
	}
}

func (f *ScreenCodeForm) Record(storeID uuid.UUID) *models.ScreenCode {
	return &models.ScreenCode{
		StoreID:    storeID,
		ScreenName: f.ScreenName,
		ScreenCode: f.code,
	}
}
