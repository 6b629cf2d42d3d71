// Copyright (c) 2026 Quizcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses configuration from CLI flags and environment variables.

CLI flags take precedence over environment variables. Secrets (admin
password, session secret, bot tokens, admin chat ID) have no literal
fallback values; the modes that use them refuse to start without them:

  - serve: ADMIN_PASSWORD, SESSION_SECRET, QUIZ_BOT_TOKEN
  - quizbot: QUIZ_BOT_TOKEN, ADMIN_CHAT_ID
  - answerbot: ANSWER_BOT_TOKEN, ADMIN_CHAT_ID

Optional settings with defaults:

  - PORT (-p): admin server port (default 5000)
  - DATABASE_URL (-d): store location (default quizcast.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default sqlite)
  - TIMEZONE (-tz): schedule timezone (default Asia/Kolkata)
  - DEBUG (-debug): verbose logging
*/
package cliparse
