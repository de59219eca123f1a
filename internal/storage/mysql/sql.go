package mysql

const insertUserSQL = `
INSERT INTO users
  (id, name, email, password_hash, role, created_at)
VALUES
  (?, ?, ?, ?, ?, ?)
`

const selectUserCols = `SELECT id, name, email, password_hash, role, created_at FROM users`

const getUserByEmailSQL = selectUserCols + ` WHERE email = ?`

const getUserByIDSQL = selectUserCols + ` WHERE id = ?`

// Note: `text` is reserved; keep it quoted everywhere.
const insertTurnsPrefix = "INSERT INTO chat_turns\n  (user_id, sender, `text`, created_at)\nVALUES "

const listTurnsSQL = "SELECT sender, `text`, created_at FROM chat_turns WHERE user_id = ? ORDER BY id"
