package services

import (
	"time"

	"quora-backend/backend/app/models"
)

// In-memory stores backing the service tests.

type fakeUserStore struct {
	users  []*models.User
	nextID uint

	// createHook runs before the insert; lets tests simulate a rival
	// sign-up winning the race at the uniqueness constraint.
	createHook func(u *models.User) error
}

func newFakeUserStore() *fakeUserStore { return &fakeUserStore{nextID: 1} }

func (f *fakeUserStore) FindByUsername(username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindByUUID(uuid string) (*models.User, error) {
	for _, u := range f.users {
		if u.UUID == uuid {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Create(u *models.User) error {
	if f.createHook != nil {
		if err := f.createHook(u); err != nil {
			return err
		}
	}
	u.ID = f.nextID
	f.nextID++
	f.users = append(f.users, u)
	return nil
}

func (f *fakeUserStore) DeleteByUUID(uuid string) error {
	for i, u := range f.users {
		if u.UUID == uuid {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return nil
}

// add seeds a user directly, bypassing sign-up.
func (f *fakeUserStore) add(u models.User) *models.User {
	u.ID = f.nextID
	f.nextID++
	cp := u
	f.users = append(f.users, &cp)
	return &cp
}

type fakeTokenStore struct {
	tokens []*models.UserAuthToken
	nextID uint
}

func newFakeTokenStore() *fakeTokenStore { return &fakeTokenStore{nextID: 1} }

func (f *fakeTokenStore) Create(t *models.UserAuthToken) error {
	t.ID = f.nextID
	f.nextID++
	f.tokens = append(f.tokens, t)
	return nil
}

func (f *fakeTokenStore) FindByAccessToken(accessToken string) (*models.UserAuthToken, error) {
	for _, t := range f.tokens {
		if t.AccessToken == accessToken {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTokenStore) Update(t *models.UserAuthToken) error {
	for i, existing := range f.tokens {
		if existing.ID == t.ID {
			f.tokens[i] = t
			return nil
		}
	}
	return nil
}

// seedSession installs an active session for the user, valid for 8 hours
// from issuedAt.
func (f *fakeTokenStore) seedSession(user *models.User, accessToken string, issuedAt time.Time) *models.UserAuthToken {
	t := &models.UserAuthToken{
		UUID:        user.UUID,
		UserID:      user.ID,
		User:        *user,
		AccessToken: accessToken,
		LoginAt:     issuedAt,
		ExpiresAt:   issuedAt.Add(8 * time.Hour),
	}
	_ = f.Create(t)
	return t
}

type fakeQuestionStore struct {
	questions []*models.Question
	nextID    uint
}

func newFakeQuestionStore() *fakeQuestionStore { return &fakeQuestionStore{nextID: 1} }

func (f *fakeQuestionStore) Create(q *models.Question) error {
	q.ID = f.nextID
	f.nextID++
	f.questions = append(f.questions, q)
	return nil
}

func (f *fakeQuestionStore) All() ([]models.Question, error) {
	out := make([]models.Question, 0, len(f.questions))
	for _, q := range f.questions {
		out = append(out, *q)
	}
	return out, nil
}

// FindByUUID hands back a copy; edits only stick via Update, like a store
// that rehydrates rows per call.
func (f *fakeQuestionStore) FindByUUID(uuid string) (*models.Question, error) {
	for _, q := range f.questions {
		if q.UUID == uuid {
			cp := *q
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeQuestionStore) Update(q *models.Question) error {
	for i, existing := range f.questions {
		if existing.ID == q.ID {
			f.questions[i] = q
			return nil
		}
	}
	return nil
}

func (f *fakeQuestionStore) DeleteByUUID(uuid string) error {
	for i, q := range f.questions {
		if q.UUID == uuid {
			f.questions = append(f.questions[:i], f.questions[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeQuestionStore) ByUserID(userID uint) ([]models.Question, error) {
	var out []models.Question
	for _, q := range f.questions {
		if q.UserID == userID {
			out = append(out, *q)
		}
	}
	return out, nil
}

type fakeAnswerStore struct {
	answers []*models.Answer
	nextID  uint
}

func newFakeAnswerStore() *fakeAnswerStore { return &fakeAnswerStore{nextID: 1} }

func (f *fakeAnswerStore) Create(a *models.Answer) error {
	a.ID = f.nextID
	f.nextID++
	f.answers = append(f.answers, a)
	return nil
}

func (f *fakeAnswerStore) FindByUUID(uuid string) (*models.Answer, error) {
	for _, a := range f.answers {
		if a.UUID == uuid {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeAnswerStore) Update(a *models.Answer) error {
	for i, existing := range f.answers {
		if existing.ID == a.ID {
			f.answers[i] = a
			return nil
		}
	}
	return nil
}

func (f *fakeAnswerStore) DeleteByUUID(uuid string) error {
	for i, a := range f.answers {
		if a.UUID == uuid {
			f.answers = append(f.answers[:i], f.answers[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeAnswerStore) ByQuestionID(questionID uint) ([]models.Answer, error) {
	var out []models.Answer
	for _, a := range f.answers {
		if a.QuestionID == questionID {
			out = append(out, *a)
		}
	}
	return out, nil
}
