package service

import (
	"context"
	"time"

	"crossword-collab-be/internal/entity"
	"crossword-collab-be/internal/repository/contract"
	"crossword-collab-be/internal/repository/specification"
	"crossword-collab-be/internal/repository/unitofwork"
	"crossword-collab-be/pkg/crossword"

	"github.com/google/uuid"
)

// In-memory unit of work backed by plain slices. The fakes interpret the same
// specification values the GORM implementations translate to SQL, so service
// logic is exercised against the real query shapes.

type fakeStore struct {
	users        []*entity.User
	puzzles      []*entity.Puzzle
	sessions     []*entity.Session
	participants []*entity.Participant
	progress     []*entity.Progress
	invites      []*entity.SessionInvite
}

type fakeUow struct {
	store *fakeStore
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository {
	return &fakeUserRepo{store: u.store}
}
func (u *fakeUow) PuzzleRepository() contract.PuzzleRepository {
	return &fakePuzzleRepo{store: u.store}
}
func (u *fakeUow) SessionRepository() contract.SessionRepository {
	return &fakeSessionRepo{store: u.store}
}
func (u *fakeUow) ParticipantRepository() contract.ParticipantRepository {
	return &fakeParticipantRepo{store: u.store}
}
func (u *fakeUow) ProgressRepository() contract.ProgressRepository {
	return &fakeProgressRepo{store: u.store}
}
func (u *fakeUow) InviteRepository() contract.InviteRepository {
	return &fakeInviteRepo{store: u.store}
}

type fakeFactory struct {
	store *fakeStore
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{store: &fakeStore{}}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

// matcher extracts the filter values a repository call carries.
type matcher struct {
	id        *uuid.UUID
	ids       []uuid.UUID
	sessionId *uuid.UUID
	userId    *uuid.UUID
	token     *string
}

func newMatcher(specs []specification.Specification) matcher {
	var m matcher
	for _, s := range specs {
		switch v := s.(type) {
		case specification.ByID:
			id := v.ID
			m.id = &id
		case specification.ByIDs:
			m.ids = v.IDs
		case specification.BySessionID:
			id := v.SessionID
			m.sessionId = &id
		case specification.ByUserID:
			id := v.UserID
			m.userId = &id
		case specification.ByToken:
			tok := v.Token
			m.token = &tok
		}
	}
	return m
}

func (m matcher) matchesId(id uuid.UUID) bool {
	if m.id != nil && *m.id != id {
		return false
	}
	if m.ids != nil {
		found := false
		for _, candidate := range m.ids {
			if candidate == id {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

type fakeUserRepo struct{ store *fakeStore }

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.store.users = append(r.store.users, user)
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	m := newMatcher(specs)
	for _, u := range r.store.users {
		if m.matchesId(u.Id) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	return r.store.users, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.users)), nil
}

type fakePuzzleRepo struct{ store *fakeStore }

func (r *fakePuzzleRepo) Create(ctx context.Context, puzzle *entity.Puzzle) error {
	r.store.puzzles = append(r.store.puzzles, puzzle)
	return nil
}

func (r *fakePuzzleRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Puzzle, error) {
	m := newMatcher(specs)
	for _, p := range r.store.puzzles {
		if m.matchesId(p.Id) {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePuzzleRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Puzzle, error) {
	return r.store.puzzles, nil
}

func (r *fakePuzzleRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.puzzles)), nil
}

type fakeSessionRepo struct{ store *fakeStore }

func (r *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	r.store.sessions = append(r.store.sessions, session)
	return nil
}

func (r *fakeSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	out := r.store.sessions[:0]
	for _, s := range r.store.sessions {
		if s.Id != id {
			out = append(out, s)
		}
	}
	r.store.sessions = out
	return nil
}

func (r *fakeSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Session, error) {
	m := newMatcher(specs)
	for _, s := range r.store.sessions {
		if m.matchesId(s.Id) {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Session, error) {
	m := newMatcher(specs)
	var out []*entity.Session
	for _, s := range r.store.sessions {
		if m.matchesId(s.Id) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.sessions)), nil
}

type fakeParticipantRepo struct{ store *fakeStore }

func (r *fakeParticipantRepo) Create(ctx context.Context, participant *entity.Participant) error {
	// Mirrors the ON CONFLICT DO NOTHING upsert on (session_id, user_id).
	for _, p := range r.store.participants {
		if p.SessionId == participant.SessionId && p.UserId == participant.UserId {
			return nil
		}
	}
	r.store.participants = append(r.store.participants, participant)
	return nil
}

func (r *fakeParticipantRepo) Touch(ctx context.Context, sessionId, userId uuid.UUID, at time.Time) error {
	for _, p := range r.store.participants {
		if p.SessionId == sessionId && p.UserId == userId {
			p.LastActiveAt = at
		}
	}
	return nil
}

func (r *fakeParticipantRepo) DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error {
	out := r.store.participants[:0]
	for _, p := range r.store.participants {
		if p.SessionId != sessionId {
			out = append(out, p)
		}
	}
	r.store.participants = out
	return nil
}

func (r *fakeParticipantRepo) matches(p *entity.Participant, m matcher) bool {
	if m.sessionId != nil && p.SessionId != *m.sessionId {
		return false
	}
	if m.userId != nil && p.UserId != *m.userId {
		return false
	}
	return true
}

func (r *fakeParticipantRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Participant, error) {
	m := newMatcher(specs)
	for _, p := range r.store.participants {
		if r.matches(p, m) {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeParticipantRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Participant, error) {
	m := newMatcher(specs)
	var out []*entity.Participant
	for _, p := range r.store.participants {
		if r.matches(p, m) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeParticipantRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

type fakeProgressRepo struct{ store *fakeStore }

func (r *fakeProgressRepo) Create(ctx context.Context, progress *entity.Progress) error {
	r.store.progress = append(r.store.progress, progress)
	return nil
}

func (r *fakeProgressRepo) Update(ctx context.Context, progress *entity.Progress) error {
	for i, p := range r.store.progress {
		if p.Id == progress.Id {
			r.store.progress[i] = progress
			return nil
		}
	}
	r.store.progress = append(r.store.progress, progress)
	return nil
}

func (r *fakeProgressRepo) DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error {
	out := r.store.progress[:0]
	for _, p := range r.store.progress {
		if p.SessionId != sessionId {
			out = append(out, p)
		}
	}
	r.store.progress = out
	return nil
}

func (r *fakeProgressRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Progress, error) {
	m := newMatcher(specs)
	for _, p := range r.store.progress {
		if m.sessionId != nil && p.SessionId != *m.sessionId {
			continue
		}
		if m.id != nil && *m.id != p.Id {
			continue
		}
		return p, nil
	}
	return nil, nil
}

type fakeInviteRepo struct{ store *fakeStore }

func (r *fakeInviteRepo) Create(ctx context.Context, invite *entity.SessionInvite) error {
	r.store.invites = append(r.store.invites, invite)
	return nil
}

func (r *fakeInviteRepo) Update(ctx context.Context, invite *entity.SessionInvite) error {
	for i, inv := range r.store.invites {
		if inv.Id == invite.Id {
			r.store.invites[i] = invite
			return nil
		}
	}
	return nil
}

func (r *fakeInviteRepo) DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error {
	out := r.store.invites[:0]
	for _, inv := range r.store.invites {
		if inv.SessionId != sessionId {
			out = append(out, inv)
		}
	}
	r.store.invites = out
	return nil
}

func (r *fakeInviteRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.SessionInvite, error) {
	m := newMatcher(specs)
	for _, inv := range r.store.invites {
		if m.token != nil && inv.Token != *m.token {
			continue
		}
		if !m.matchesId(inv.Id) {
			continue
		}
		return inv, nil
	}
	return nil, nil
}

func (r *fakeInviteRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SessionInvite, error) {
	return r.store.invites, nil
}

// recordingBroadcaster captures progress pushes instead of fanning out.
type recordingBroadcaster struct {
	sessionIds []uuid.UUID
	grids      []crossword.Grid
	excluded   []uuid.UUID
}

func (b *recordingBroadcaster) BroadcastProgress(sessionId uuid.UUID, grid crossword.Grid, excludeUserId uuid.UUID) {
	b.sessionIds = append(b.sessionIds, sessionId)
	b.grids = append(b.grids, grid)
	b.excluded = append(b.excluded, excludeUserId)
}

// droppingPublisher satisfies IPublisherService without a running pubsub.
type droppingPublisher struct{}

func (droppingPublisher) Publish(ctx context.Context, payload []byte) error { return nil }

// fakeMailer records invite sends.
type fakeMailer struct {
	toEmails []string
	tokens   []string
	fail     error
}

func (m *fakeMailer) SendSessionInvite(toEmail, inviterName, puzzleTitle, token string) error {
	if m.fail != nil {
		return m.fail
	}
	m.toEmails = append(m.toEmails, toEmail)
	m.tokens = append(m.tokens, token)
	return nil
}

func seedPuzzle(store *fakeStore, rows, cols int) *entity.Puzzle {
	blocks := make([]string, rows)
	for r := range blocks {
		row := make([]byte, cols)
		for c := range row {
			row[c] = '.'
		}
		blocks[r] = string(row)
	}
	p := &entity.Puzzle{
		Id:    uuid.New(),
		Title: "Test Puzzle",
		Rows:  rows,
		Cols:  cols,
		Document: crossword.Document{
			Title:  "Test Puzzle",
			Rows:   rows,
			Cols:   cols,
			Blocks: blocks,
		},
		CreatedAt: time.Now(),
	}
	store.puzzles = append(store.puzzles, p)
	return p
}
