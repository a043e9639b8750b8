package service

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/eximroyals/backend/internal/lib/job"
	"github.com/eximroyals/backend/internal/model"
	"github.com/rs/zerolog"
)

var errDB = errors.New("connection refused")

func discardLogger() *zerolog.Logger {
	l := zerolog.New(io.Discard)
	return &l
}

type fakeAdminRepository struct {
	byEmail map[string]*model.Admin
	nextID  int64
}

func newFakeAdminRepository() *fakeAdminRepository {
	return &fakeAdminRepository{byEmail: map[string]*model.Admin{}}
}

func (f *fakeAdminRepository) FindByID(_ context.Context, id int64) (*model.Admin, error) {
	for _, a := range f.byEmail {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAdminRepository) FindByEmail(_ context.Context, email string) (*model.Admin, error) {
	return f.byEmail[email], nil
}

func (f *fakeAdminRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeAdminRepository) Create(_ context.Context, admin *model.Admin) error {
	f.nextID++
	admin.ID = f.nextID
	f.byEmail[admin.Email] = admin
	return nil
}

type fakeStaticPageRepository struct {
	pages   map[string]*model.StaticPage
	creates int
	updates int
}

func newFakeStaticPageRepository() *fakeStaticPageRepository {
	return &fakeStaticPageRepository{pages: map[string]*model.StaticPage{}}
}

func (f *fakeStaticPageRepository) FindAll(context.Context) ([]model.StaticPage, error) {
	var out []model.StaticPage
	for _, p := range f.pages {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeStaticPageRepository) FindByPageName(_ context.Context, pageName string) (*model.StaticPage, error) {
	return f.pages[pageName], nil
}

func (f *fakeStaticPageRepository) Create(_ context.Context, page *model.StaticPage) error {
	f.creates++
	page.ID = int64(f.creates)
	f.pages[page.PageName] = page
	return nil
}

func (f *fakeStaticPageRepository) Update(_ context.Context, page *model.StaticPage) error {
	f.updates++
	f.pages[page.PageName] = page
	return nil
}

// plainHasher keeps tests fast by skipping bcrypt.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (plainHasher) Matches(hash, password string) bool  { return hash == "hashed:"+password }

type fakeTokenIssuer struct {
	expiresAt time.Time
}

func (f fakeTokenIssuer) Generate(adminID int64, email string) (string, time.Time, error) {
	return "token-for-" + email, f.expiresAt, nil
}

type fakeCategoryRepository struct {
	categories map[int64]*model.Category
	nextID     int64
	updated    *model.Category
	deleted    []int64
}

func newFakeCategoryRepository(seed ...model.Category) *fakeCategoryRepository {
	f := &fakeCategoryRepository{categories: map[int64]*model.Category{}}
	for i := range seed {
		c := seed[i]
		f.categories[c.ID] = &c
		f.nextID = max(f.nextID, c.ID)
	}
	return f
}

func (f *fakeCategoryRepository) FindAll(context.Context) ([]model.Category, error) {
	var out []model.Category
	for id := int64(1); id <= f.nextID; id++ {
		if c, ok := f.categories[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepository) FindByID(_ context.Context, id int64) (*model.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCategoryRepository) Create(_ context.Context, category *model.Category) error {
	f.nextID++
	category.ID = f.nextID
	cp := *category
	f.categories[category.ID] = &cp
	return nil
}

func (f *fakeCategoryRepository) Update(_ context.Context, category *model.Category) error {
	cp := *category
	f.categories[category.ID] = &cp
	f.updated = &cp
	return nil
}

func (f *fakeCategoryRepository) DeleteByID(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	delete(f.categories, id)
	return nil
}

type fakeProductFinder struct {
	products map[int64]*model.Product
	err      error
}

func (f fakeProductFinder) FindByID(_ context.Context, id int64) (*model.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products[id], nil
}

type fakeEnquiryRepository struct {
	stored []*model.Enquiry
	clock  time.Time
}

func (f *fakeEnquiryRepository) Create(_ context.Context, enquiry *model.Enquiry) error {
	f.clock = f.clock.Add(time.Second)
	enquiry.ID = int64(len(f.stored) + 1)
	enquiry.CreatedAt = f.clock
	f.stored = append(f.stored, enquiry)
	return nil
}

func (f *fakeEnquiryRepository) FindAllOrderByCreatedAtDesc(context.Context) ([]model.Enquiry, error) {
	out := make([]model.Enquiry, 0, len(f.stored))
	for i := len(f.stored) - 1; i >= 0; i-- {
		out = append(out, *f.stored[i])
	}
	return out, nil
}

type fakeNotifier struct {
	payloads []job.EnquiryNotificationPayload
	err      error
}

func (f *fakeNotifier) NotifyEnquiry(_ context.Context, payload job.EnquiryNotificationPayload) error {
	f.payloads = append(f.payloads, payload)
	return f.err
}
