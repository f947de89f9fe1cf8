// Package views declares the column catalogue and table constructor of each
// back-office screen.
package views

import (
	"context"
	"strconv"

	"github.com/example/inhalebay/internal/ledger"
	"github.com/example/inhalebay/internal/models"
	"github.com/example/inhalebay/internal/repository"
	"github.com/example/inhalebay/internal/tableview"
)

// Lister is the part of a repository a table needs.
type Lister[T any] interface {
	List(ctx context.Context, page, pageSize int) repository.Result[[]T]
}

func fetcher[T any](l Lister[T]) tableview.Fetcher[T] {
	return l.List
}

var CustomerColumns = []tableview.Column[models.Customer]{
	{Key: "id", Header: "ID", Value: func(c models.Customer) any { return c.ID.String() }, Fixed: true},
	{Key: "name", Header: "Name", Value: func(c models.Customer) any { return c.Name }},
	{Key: "phone_number", Header: "Phone Number", Value: func(c models.Customer) any { return c.PhoneNumber }},
	{Key: "avatar_name", Header: "Avatar", Value: func(c models.Customer) any { return c.AvatarName }},
	{Key: "current_points", Header: "Current Points", Value: func(c models.Customer) any { return c.CurrentPoints }},
	{Key: "lifetime_points", Header: "Lifetime Points", Value: func(c models.Customer) any { return c.LifetimePoints }},
	{Key: "total_visits", Header: "Total Visits", Value: func(c models.Customer) any { return c.TotalVisits }},
	{Key: "last_visit", Header: "Last Visit", Value: func(c models.Customer) any { return c.LastVisit }},
	{Key: "join_date", Header: "Join Date", Value: func(c models.Customer) any { return c.JoinDate }},
	{Key: "membership_level", Header: "Membership", Value: func(c models.Customer) any { return c.MembershipLevel }},
	{Key: "is_active", Header: "Active", Value: func(c models.Customer) any { return c.IsActive }},
	{Key: "created_at", Header: "Created At", Value: func(c models.Customer) any { return c.CreatedAt }},
}

// MatchLabel filters the derived transaction label exactly. "All" matches
// every row.
func MatchLabel(value any, query string) bool {
	if query == ledger.LabelAll {
		return true
	}
	return tableview.Equals(value, query)
}

var TransactionColumns = []tableview.Column[models.CustomerTransaction]{
	{Key: "id", Header: "ID", Value: func(t models.CustomerTransaction) any { return t.ID }, Fixed: true},
	{Key: "transaction_display", Header: "Type", Value: func(t models.CustomerTransaction) any { return ledger.Label(t) }, Filter: MatchLabel},
	{Key: "points_changed", Header: "Points", Value: func(t models.CustomerTransaction) any { return t.PointsChanged }},
	{Key: "net_points", Header: "Net Points", Value: func(t models.CustomerTransaction) any { return t.NetPoints }},
	{Key: "reward_id", Header: "Reward", Value: func(t models.CustomerTransaction) any { return t.RewardID }},
	{Key: "customer_id", Header: "Customer", Value: func(t models.CustomerTransaction) any { return t.CustomerID.String() }},
	{Key: "created_at", Header: "Date", Value: func(t models.CustomerTransaction) any { return t.CreatedAt }},
}

var RewardColumns = []tableview.Column[models.Reward]{
	{Key: "id", Header: "ID", Value: func(r models.Reward) any { return r.ID }, Fixed: true},
	{Key: "title", Header: "Title", Value: func(r models.Reward) any { return r.Title }},
	{Key: "reward_name", Header: "Reward", Value: func(r models.Reward) any { return r.RewardName }},
	{Key: "unlock_points", Header: "Unlock Points", Value: func(r models.Reward) any { return r.UnlockPoints }},
	{Key: "reward_type", Header: "Type", Value: func(r models.Reward) any { return r.RewardType }, Filter: tableview.Equals},
	{Key: "days_left", Header: "Days Left", Value: func(r models.Reward) any { return r.DaysLeft }},
	{Key: "created_at", Header: "Created At", Value: func(r models.Reward) any { return r.CreatedAt }},
}

var MemberTierColumns = []tableview.Column[models.MemberTier]{
	{Key: "id", Header: "ID", Value: func(m models.MemberTier) any { return m.ID }, Fixed: true},
	{Key: "member_tier_name", Header: "Tier", Value: func(m models.MemberTier) any { return m.MemberTierName }},
	{Key: "description", Header: "Description", Value: func(m models.MemberTier) any { return m.Description }},
	{Key: "value_type", Header: "Value Type", Value: func(m models.MemberTier) any { return m.ValueType }, Filter: tableview.Equals},
	{Key: "value", Header: "Value", Value: func(m models.MemberTier) any { return m.Value }},
	{Key: "created_at", Header: "Created At", Value: func(m models.MemberTier) any { return m.CreatedAt }},
}

var ScreenCodeColumns = []tableview.Column[models.ScreenCode]{
	{Key: "id", Header: "ID", Value: func(s models.ScreenCode) any { return s.ID }, Fixed: true},
	{Key: "screen_name", Header: "Screen", Value: func(s models.ScreenCode) any { return s.ScreenName }},
	{Key: "screen_code", Header: "Code", Value: func(s models.ScreenCode) any { return s.ScreenCode }},
	{Key: "created_at", Header: "Created At", Value: func(s models.ScreenCode) any { return s.CreatedAt }},
}

func CustomerKey(c models.Customer) string               { return c.ID.String() }
func TransactionKey(t models.CustomerTransaction) string { return strconv.FormatInt(t.ID, 10) }
func RewardKey(r models.Reward) string                   { return strconv.FormatInt(r.ID, 10) }
func MemberTierKey(m models.MemberTier) string           { return strconv.FormatInt(m.ID, 10) }
func ScreenCodeKey(s models.ScreenCode) string           { return strconv.FormatInt(s.ID, 10) }

func Customers(l Lister[models.Customer], pageSize int) *tableview.Table[models.Customer] {
	return tableview.New(fetcher(l), CustomerColumns, CustomerKey, pageSize)
}

func Transactions(l Lister[models.CustomerTransaction], pageSize int) *tableview.Table[models.CustomerTransaction] {
	return tableview.New(fetcher(l), TransactionColumns, TransactionKey, pageSize)
}

func Rewards(l Lister[models.Reward], pageSize int) *tableview.Table[models.Reward] {
	return tableview.New(fetcher(l), RewardColumns, RewardKey, pageSize)
}

func MemberTiers(l Lister[models.MemberTier], pageSize int) *tableview.Table[models.MemberTier] {
	return tableview.New(fetcher(l), MemberTierColumns, MemberTierKey, pageSize)
}

func ScreenCodes(l Lister[models.ScreenCode], pageSize int) *tableview.Table[models.ScreenCode] {
	return tableview.New(fetcher(l), ScreenCodeColumns, ScreenCodeKey, pageSize)
}
