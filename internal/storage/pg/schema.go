package pg

// Schema bootstrap. Actor ids come from the external identity service,
// so member/creator columns are opaque ids without a users table.
//
// The partial unique index on membership_requests enforces the
// at-most-one-pending invariant while letting resolved requests
// accumulate as history for the same (board, user) pair.
const schema = `
CREATE TABLE IF NOT EXISTS boards (
	id          BIGSERIAL PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	is_public   BOOLEAN NOT NULL DEFAULT TRUE,
	created_by  BIGINT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS board_members (
	board_id BIGINT NOT NULL REFERENCES boards(id) ON DELETE CASCADE,
	user_id  BIGINT NOT NULL,
	PRIMARY KEY (board_id, user_id)
);

CREATE TABLE IF NOT EXISTS feedbacks (
	id         BIGSERIAL PRIMARY KEY,
	board_id   BIGINT NOT NULL REFERENCES boards(id) ON DELETE CASCADE,
	title      TEXT NOT NULL,
	body       TEXT NOT NULL,
	status     TEXT NOT NULL DEFAULT 'open',
	created_by BIGINT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS feedbacks_board_idx ON feedbacks (board_id, created_at DESC);

CREATE TABLE IF NOT EXISTS feedback_upvotes (
	feedback_id BIGINT NOT NULL REFERENCES feedbacks(id) ON DELETE CASCADE,
	user_id     BIGINT NOT NULL,
	PRIMARY KEY (feedback_id, user_id)
);

CREATE TABLE IF NOT EXISTS comments (
	id          BIGSERIAL PRIMARY KEY,
	feedback_id BIGINT NOT NULL REFERENCES feedbacks(id) ON DELETE CASCADE,
	body        TEXT NOT NULL,
	created_by  BIGINT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS comments_feedback_idx ON comments (feedback_id, created_at DESC);

CREATE TABLE IF NOT EXISTS membership_requests (
	id           BIGSERIAL PRIMARY KEY,
	board_id     BIGINT NOT NULL REFERENCES boards(id) ON DELETE CASCADE,
	user_id      BIGINT NOT NULL,
	status       TEXT NOT NULL DEFAULT 'pending',
	message      TEXT NOT NULL DEFAULT '',
	requested_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	handled_by   BIGINT,
	handled_at   TIMESTAMPTZ
);
CREATE UNIQUE INDEX IF NOT EXISTS membership_requests_pending_uniq
	ON membership_requests (board_id, user_id) WHERE status = 'pending';

CREATE TABLE IF NOT EXISTS board_invites (
	id         BIGSERIAL PRIMARY KEY,
	board_id   BIGINT NOT NULL REFERENCES boards(id) ON DELETE CASCADE,
	token_hash TEXT NOT NULL UNIQUE,
	created_by BIGINT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	expires_at TIMESTAMPTZ,
	max_uses   INT,
	uses       INT NOT NULL DEFAULT 0,
	active     BOOLEAN NOT NULL DEFAULT TRUE,
	note       TEXT NOT NULL DEFAULT ''
);
`

func (s *Storage) InitSchema() error {
	_, err := s.db.Exec(schema)
	return err
}
