package provider_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tnqbao/gau-design-service/entity"
	"github.com/tnqbao/gau-design-service/provider"
	"gorm.io/gorm"
)

type fakeDesignStore struct {
	designs    []*entity.Design
	createErrs []error // consumed one per Create call
	creates    int
	getErr     error
}

func (f *fakeDesignStore) Create(design *entity.Design) error {
	f.creates++
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return err
		}
	}
	if design.ID == uuid.Nil {
		design.ID = uuid.New()
	}
	f.designs = append(f.designs, design)
	return nil
}

func (f *fakeDesignStore) ListByDesigner(designerID uuid.UUID) ([]*entity.Design, error) {
	var owned []*entity.Design
	for _, design := range f.designs {
		if design.DesignerID == designerID {
			owned = append(owned, design)
		}
	}
	return owned, nil
}

func (f *fakeDesignStore) GetByKeyAndDesigner(designKey string, designerID uuid.UUID) (*entity.Design, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, design := range f.designs {
		if design.DesignKey == designKey && design.DesignerID == designerID {
			return design, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func TestCreateDesign(t *testing.T) {
	t.Parallel()
	store := &fakeDesignStore{}
	svc := provider.NewDesignService(store)
	designerID := uuid.New()

	design, err := svc.Create(designerID, "Bracket", "a printable bracket")
	require.NoError(t, err)

	assert.Len(t, design.DesignKey, entity.DesignKeyLength)
	assert.Equal(t, designerID, design.DesignerID)
	assert.Equal(t, "Bracket", design.Name)
}

func TestCreateDesignRequiresName(t *testing.T) {
	t.Parallel()
	svc := provider.NewDesignService(&fakeDesignStore{})

	_, err := svc.Create(uuid.New(), "", "no name")
	var validationErr *provider.ValidationError
	require.Error(t, err)
	assert.True(t, errors.As(err, &validationErr))
}

func TestCreateDesignRetriesKeyCollision(t *testing.T) {
	t.Parallel()
	store := &fakeDesignStore{createErrs: []error{gorm.ErrDuplicatedKey, gorm.ErrDuplicatedKey, nil}}
	svc := provider.NewDesignService(store)

	design, err := svc.Create(uuid.New(), "Bracket", "")
	require.NoError(t, err)
	assert.Equal(t, 3, store.creates)
	assert.Len(t, design.DesignKey, entity.DesignKeyLength)
}

func TestCreateDesignExhaustsRetries(t *testing.T) {
	t.Parallel()
	store := &fakeDesignStore{createErrs: []error{gorm.ErrDuplicatedKey, gorm.ErrDuplicatedKey, gorm.ErrDuplicatedKey}}
	svc := provider.NewDesignService(store)

	_, err := svc.Create(uuid.New(), "Bracket", "")
	var conflictErr *provider.ConflictError
	require.Error(t, err)
	assert.True(t, errors.As(err, &conflictErr))
}

func TestListDesignsScopedToOwner(t *testing.T) {
	t.Parallel()
	store := &fakeDesignStore{}
	svc := provider.NewDesignService(store)
	alice := uuid.New()
	bob := uuid.New()

	_, err := svc.Create(alice, "Bracket", "")
	require.NoError(t, err)
	_, err = svc.Create(alice, "Hinge", "")
	require.NoError(t, err)
	_, err = svc.Create(bob, "Gear", "")
	require.NoError(t, err)

	designs, err := svc.List(alice)
	require.NoError(t, err)
	assert.Len(t, designs, 2)
	for _, design := range designs {
		assert.Equal(t, alice, design.DesignerID)
	}
}

func TestCreateDesignKeysAreUnique(t *testing.T) {
	t.Parallel()
	store := &fakeDesignStore{}
	svc := provider.NewDesignService(store)
	designerID := uuid.New()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		design, err := svc.Create(designerID, "Bracket", "")
		require.NoError(t, err)
		assert.False(t, seen[design.DesignKey], "duplicate design key generated")
		seen[design.DesignKey] = true
	}
}
