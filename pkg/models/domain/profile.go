package domain

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrIncompleteProfile = errors.New("all profile fields are required")
	ErrInvalidProfile    = errors.New("invalid profile")
)

type Sector string

const (
	SectorHealth  Sector = "health"
	SectorFinance Sector = "finance"
	SectorPublic  Sector = "public"
	SectorTech    Sector = "tech"
	SectorRetail  Sector = "retail"
	SectorOther   Sector = "other"
)

var Sectors = []Sector{SectorHealth, SectorFinance, SectorPublic, SectorTech, SectorRetail, SectorOther}

type Size string

const (
	SizeMicro  Size = "micro"  // 1-10
	SizeSmall  Size = "small"  // 11-49
	SizeMedium Size = "medium" // 50-199
	SizeLarge  Size = "large"  // 200+
)

var Sizes = []Size{SizeMicro, SizeSmall, SizeMedium, SizeLarge}

type BudgetTier string

const (
	BudgetLow    BudgetTier = "low"
	BudgetMedium BudgetTier = "medium"
	BudgetHigh   BudgetTier = "high"
)

var BudgetTiers = []BudgetTier{BudgetLow, BudgetMedium, BudgetHigh}

type Maturity string

const (
	MaturityInitial   Maturity = "initial"
	MaturityManaged   Maturity = "managed"
	MaturityDefined   Maturity = "defined"
	MaturityOptimized Maturity = "optimized"
)

var Maturities = []Maturity{MaturityInitial, MaturityManaged, MaturityDefined, MaturityOptimized}

type Infrastructure string

const (
	InfraOnPrem Infrastructure = "onprem"
	InfraCloud  Infrastructure = "cloud"
	InfraHybrid Infrastructure = "hybrid"
)

var Infrastructures = []Infrastructure{InfraOnPrem, InfraCloud, InfraHybrid}

// Profile describes the organization being assessed.
// Maturity and AnnualRevenue are informational: the cost math does not read them.
type Profile struct {
	Sector         Sector
	Size           Size
	BudgetTier     BudgetTier
	Maturity       Maturity
	Infrastructure []Infrastructure
	AnnualRevenue  *float64
}

// HasCloud reports whether any part of the infrastructure runs in the cloud.
func (p Profile) HasCloud() bool {
	return slices.Contains(p.Infrastructure, InfraCloud) || slices.Contains(p.Infrastructure, InfraHybrid)
}

// ProfileInput is a profile as submitted by a user, before validation.
type ProfileInput struct {
	Sector         string
	Size           string
	Budget         string
	Maturity       string
	Infrastructure []string
	AnnualRevenue  *float64
}

// Parse validates the input. Every field but AnnualRevenue is required and
// at least one infrastructure must be given.
func (in ProfileInput) Parse() (Profile, error) {
	if in.Sector == "" || in.Size == "" || in.Budget == "" || in.Maturity == "" || len(in.Infrastructure) == 0 {
		return Profile{}, ErrIncompleteProfile
	}

	sector, err := ParseSector(in.Sector)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	size, err := ParseSize(in.Size)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	budget, err := ParseBudgetTier(in.Budget)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	maturity, err := ParseMaturity(in.Maturity)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	infra, err := ParseInfrastructure(in.Infrastructure)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	if in.AnnualRevenue != nil && *in.AnnualRevenue < 0 {
		return Profile{}, fmt.Errorf("%w: annual revenue must not be negative", ErrInvalidProfile)
	}

	return Profile{
		Sector:         sector,
		Size:           size,
		BudgetTier:     budget,
		Maturity:       maturity,
		Infrastructure: infra,
		AnnualRevenue:  in.AnnualRevenue,
	}, nil
}

func ParseSector(s string) (Sector, error) {
	return parseEnum(s, Sectors, "sector")
}

func ParseSize(s string) (Size, error) {
	return parseEnum(s, Sizes, "size")
}

func ParseBudgetTier(s string) (BudgetTier, error) {
	return parseEnum(s, BudgetTiers, "budget tier")
}

func ParseMaturity(s string) (Maturity, error) {
	return parseEnum(s, Maturities, "maturity")
}

func ParseInfrastructure(values []string) ([]Infrastructure, error) {
	infra := make([]Infrastructure, 0, len(values))
	for _, v := range values {
		i, err := parseEnum(v, Infrastructures, "infrastructure")
		if err != nil {
			return nil, err
		}
		if !slices.Contains(infra, i) {
			infra = append(infra, i)
		}
	}
	return infra, nil
}

func parseEnum[T ~string](s string, allowed []T, kind string) (T, error) {
	for _, a := range allowed {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown %s %q, expected one of %v", kind, s, allowed)
}
