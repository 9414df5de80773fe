package accounts

import (
	"context"
	"fmt"
	"sync"

	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/ledger"
	"github.com/AbbasAli4ever/FinanxBackend-sub001/internal/store"
	"github.com/google/uuid"
)

// Repository is the persistence surface the manager needs. The sqlite store
// implements it; tests may substitute their own.
type Repository interface {
	CreateAccount(ctx context.Context, acct *ledger.Account) error
	CreateAccounts(ctx context.Context, accts []*ledger.Account) error
	GetAccount(ctx context.Context, companyID, id string) (*ledger.Account, error)
	ListAccounts(ctx context.Context, companyID string, f store.AccountFilter) ([]ledger.Account, error)
	UpdateAccount(ctx context.Context, acct *ledger.Account, paths map[string]string) error
	DeleteAccount(ctx context.Context, companyID, id string) error
	ChildCount(ctx context.Context, companyID, id string) (int, error)
	SubAccountCounts(ctx context.Context, companyID string) (map[string]int, error)
	MaxDisplayOrder(ctx context.Context, companyID string) (int, error)
	AccountNumberExists(ctx context.Context, companyID, number, excludeID string) (bool, error)
	SiblingNameExists(ctx context.Context, companyID, parentID, name, excludeID string) (bool, error)
	HasAccounts(ctx context.Context, companyID string) (bool, error)
}

// Service is the chart-of-accounts manager: the only mutator over accounts.
// Mutations are serialized so a rename's path-rebuild cascade never interleaves
// with another write to the same subtree.
type Service struct {
	repo Repository
	mu   sync.Mutex
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateParams is the draft for a new account. NormalBalance is never taken
// from input; it is derived from Type.
type CreateParams struct {
	CompanyID     string
	Name          string
	AccountNumber string
	Type          ledger.AccountType
	DetailType    string
	Description   string
	ParentID      string
}

func (s *Service) Create(ctx context.Context, p CreateParams) (*ledger.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.Name == "" {
		return nil, ledger.ErrNameRequired
	}
	if !ledger.ValidType(p.Type) {
		return nil, fmt.Errorf("%w: %q", ledger.ErrInvalidAccountType, p.Type)
	}
	if !ledger.ValidDetailType(p.Type, p.DetailType) {
		return nil, fmt.Errorf("%w: %q under %q", ledger.ErrInvalidDetailType, p.DetailType, p.Type)
	}

	if p.AccountNumber != "" {
		taken, err := s.repo.AccountNumberExists(ctx, p.CompanyID, p.AccountNumber, "")
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: %q", ledger.ErrDuplicateAccountNumber, p.AccountNumber)
		}
	}

	depth := 0
	parentPath := ""
	if p.ParentID != "" {
		parent, err := s.repo.GetAccount(ctx, p.CompanyID, p.ParentID)
		if err != nil {
			return nil, err
		}
		if parent.Type != p.Type {
			return nil, fmt.Errorf("%w: parent is %q, draft is %q", ledger.ErrParentTypeMismatch, parent.Type, p.Type)
		}
		depth = parent.Depth + 1
		if depth >= ledger.MaxDepth {
			return nil, fmt.Errorf("%w: depth %d", ledger.ErrDepthExceeded, depth)
		}
		parentPath = parent.FullPath
	}

	taken, err := s.repo.SiblingNameExists(ctx, p.CompanyID, p.ParentID, p.Name, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: %q", ledger.ErrDuplicateName, p.Name)
	}

	maxOrder, err := s.repo.MaxDisplayOrder(ctx, p.CompanyID)
	if err != nil {
		return nil, err
	}

	nb, _ := ledger.NormalBalanceFor(p.Type)
	acct := &ledger.Account{
		ID:            uuid.NewString(),
		CompanyID:     p.CompanyID,
		Name:          p.Name,
		AccountNumber: p.AccountNumber,
		Type:          p.Type,
		DetailType:    p.DetailType,
		NormalBalance: nb,
		Description:   p.Description,
		ParentID:      p.ParentID,
		Depth:         depth,
		FullPath:      ledger.ChildPath(parentPath, p.Name),
		IsActive:      true,
		DisplayOrder:  maxOrder + 1,
	}

	if err := s.repo.CreateAccount(ctx, acct); err != nil {
		return nil, err
	}
	return s.repo.GetAccount(ctx, p.CompanyID, acct.ID)
}

// UpdateParams is a patch: nil fields are untouched. The account type itself
// is immutable after creation.
type UpdateParams struct {
	Name          *string
	AccountNumber *string
	DetailType    *string
	Description   *string
	IsActive      *bool
}

func (s *Service) Update(ctx context.Context, companyID, id string, p UpdateParams) (*ledger.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, err := s.repo.GetAccount(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if p.DetailType != nil && *p.DetailType != acct.DetailType {
		// Re-validate against the existing, immutable account type.
		if !ledger.ValidDetailType(acct.Type, *p.DetailType) {
			return nil, fmt.Errorf("%w: %q under %q", ledger.ErrInvalidDetailType, *p.DetailType, acct.Type)
		}
		acct.DetailType = *p.DetailType
	}

	if p.AccountNumber != nil && *p.AccountNumber != acct.AccountNumber {
		if *p.AccountNumber != "" {
			taken, err := s.repo.AccountNumberExists(ctx, companyID, *p.AccountNumber, id)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, fmt.Errorf("%w: %q", ledger.ErrDuplicateAccountNumber, *p.AccountNumber)
			}
		}
		acct.AccountNumber = *p.AccountNumber
	}

	if p.Description != nil {
		acct.Description = *p.Description
	}
	if p.IsActive != nil {
		acct.IsActive = *p.IsActive
	}

	var paths map[string]string
	if p.Name != nil && *p.Name != acct.Name {
		if *p.Name == "" {
			return nil, ledger.ErrNameRequired
		}
		taken, err := s.repo.SiblingNameExists(ctx, companyID, acct.ParentID, *p.Name, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: %q", ledger.ErrDuplicateName, *p.Name)
		}

		acct.Name = *p.Name
		parentPath := ""
		if acct.ParentID != "" {
			parent, err := s.repo.GetAccount(ctx, companyID, acct.ParentID)
			if err != nil {
				return nil, err
			}
			parentPath = parent.FullPath
		}
		acct.FullPath = ledger.ChildPath(parentPath, acct.Name)

		paths, err = s.rebuildDescendantPaths(ctx, companyID, acct)
		if err != nil {
			return nil, err
		}
	}

	if err := s.repo.UpdateAccount(ctx, acct, paths); err != nil {
		return nil, err
	}
	return s.repo.GetAccount(ctx, companyID, id)
}

// rebuildDescendantPaths walks the renamed account's subtree in pre-order over
// an id-indexed map of the company's accounts and computes every descendant's
// new full path. The repository applies the map atomically.
func (s *Service) rebuildDescendantPaths(ctx context.Context, companyID string, renamed *ledger.Account) (map[string]string, error) {
	all, err := s.repo.ListAccounts(ctx, companyID, store.AccountFilter{IncludeInactive: true})
	if err != nil {
		return nil, err
	}

	children := make(map[string][]*ledger.Account)
	for i := range all {
		if all[i].ParentID != "" {
			children[all[i].ParentID] = append(children[all[i].ParentID], &all[i])
		}
	}

	paths := make(map[string]string)
	var walk func(parentID, parentPath string)
	walk = func(parentID, parentPath string) {
		for _, child := range children[parentID] {
			newPath := ledger.ChildPath(parentPath, child.Name)
			paths[child.ID] = newPath
			walk(child.ID, newPath)
		}
	}
	walk(renamed.ID, renamed.FullPath)
	return paths, nil
}

// Delete hard-deletes a leaf account. System accounts, accounts with
// sub-accounts, and accounts with a non-zero balance are protected.
func (s *Service) Delete(ctx context.Context, companyID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	acct, err := s.repo.GetAccount(ctx, companyID, id)
	if err != nil {
		return err
	}
	if acct.IsSystem {
		return fmt.Errorf("%w: %q", ledger.ErrSystemAccount, acct.Name)
	}
	n, err := s.repo.ChildCount(ctx, companyID, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: %q has %d", ledger.ErrHasSubAccounts, acct.Name, n)
	}
	if !ledger.IsZeroAmount(acct.CurrentBalance) {
		return fmt.Errorf("%w: %q has balance %s", ledger.ErrNonZeroBalance, acct.Name, acct.CurrentBalance)
	}

	return s.repo.DeleteAccount(ctx, companyID, id)
}

func (s *Service) Get(ctx context.Context, companyID, id string) (*ledger.Account, error) {
	return s.repo.GetAccount(ctx, companyID, id)
}

// List returns active accounts (optionally filtered by type) with each row's
// sub-account count attached.
func (s *Service) List(ctx context.Context, companyID string, typeFilter ledger.AccountType) ([]ledger.AccountSummary, error) {
	accts, err := s.repo.ListAccounts(ctx, companyID, store.AccountFilter{Type: typeFilter})
	if err != nil {
		return nil, err
	}
	counts, err := s.repo.SubAccountCounts(ctx, companyID)
	if err != nil {
		return nil, err
	}

	out := make([]ledger.AccountSummary, 0, len(accts))
	for _, a := range accts {
		out = append(out, ledger.AccountSummary{Account: a, SubAccountsCount: counts[a.ID]})
	}
	return out, nil
}

// Tree assembles the active chart of accounts: roots with nested descendants,
// ordered by (type, display order, account number), grouped by top-level group.
func (s *Service) Tree(ctx context.Context, companyID string, typeFilter ledger.AccountType) (*ledger.ChartTree, error) {
	accts, err := s.repo.ListAccounts(ctx, companyID, store.AccountFilter{Type: typeFilter})
	if err != nil {
		return nil, err
	}

	nodes := make(map[string]*ledger.TreeNode, len(accts))
	for _, a := range accts {
		nodes[a.ID] = &ledger.TreeNode{Account: a, SubAccounts: []*ledger.TreeNode{}}
	}

	var roots []*ledger.TreeNode
	for _, a := range accts {
		node := nodes[a.ID]
		if a.ParentID == "" {
			roots = append(roots, node)
			continue
		}
		if parent, ok := nodes[a.ParentID]; ok {
			parent.SubAccounts = append(parent.SubAccounts, node)
		}
		// An active child under an inactive parent is unreachable in the
		// tree; list views still show it.
	}

	tree := &ledger.ChartTree{}
	byGroup := make(map[ledger.Group][]*ledger.TreeNode)
	for _, root := range roots {
		g := ledger.GroupFor(root.Type)
		byGroup[g] = append(byGroup[g], root)
	}
	for _, g := range ledger.AllGroups {
		if len(byGroup[g]) == 0 {
			continue
		}
		tree.Groups = append(tree.Groups, ledger.TreeGroup{
			Group:    g,
			Label:    ledger.GroupLabel(g),
			Accounts: byGroup[g],
		})
	}
	return tree, nil
}

// SeedDefaults provisions the starter chart for a new company. A company that
// already has accounts is left untouched, making the call idempotent at the
// provisioning boundary.
func (s *Service) SeedDefaults(ctx context.Context, companyID string) ([]ledger.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seeded, err := s.repo.HasAccounts(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if seeded {
		return nil, nil
	}

	chart := DefaultChart()
	accts := make([]*ledger.Account, 0, len(chart))
	for i, seed := range chart {
		nb, _ := ledger.NormalBalanceFor(seed.Type)
		accts = append(accts, &ledger.Account{
			ID:            uuid.NewString(),
			CompanyID:     companyID,
			Name:          seed.Name,
			AccountNumber: seed.Number,
			Type:          seed.Type,
			DetailType:    seed.DetailType,
			NormalBalance: nb,
			Description:   seed.Description,
			FullPath:      seed.Name,
			IsSystem:      true,
			IsActive:      true,
			DisplayOrder:  i + 1,
		})
	}

	if err := s.repo.CreateAccounts(ctx, accts); err != nil {
		return nil, err
	}

	out := make([]ledger.Account, len(accts))
	for i, a := range accts {
		out[i] = *a
	}
	return out, nil
}
