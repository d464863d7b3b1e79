/*
Package campaigner provides a batch email-marketing campaign runner.

Campaigner reads recipients from a semicolon-delimited contact file,
renders an HTML template with inline (cid-referenced) images, and
submits one message per recipient over SMTP, pacing submissions with a
fixed delay and reporting aggregate counters at the end.

It is a linear campaign tool, not a service: it starts, processes the
contact list once, prints a summary, and exits. There is no queueing,
no retry with backoff, and no delivery tracking.

# Configuration

Connection and sender settings come from the environment (a local .env
file is honored when present):

	SMTP_SERVER     SMTP host (default smtp.gmail.com)
	SMTP_PORT       submission port (default 587)
	EMAIL_USER      account user, required
	EMAIL_PASSWORD  account password, required
	FROM_NAME       display name of the sender
	FROM_EMAIL      sender address (default EMAIL_USER)
	EMAIL_SUBJECT   subject line for every message

The campaign itself (contact file, HTML template, inline images) is
described in a YAML file, .campaigner.yaml by default.

# Usage

Basic usage:

	campaigner send                   # generic greeting campaign
	campaigner send --limit 5         # test mode, first 5 contacts only
	campaigner personalized           # per-recipient greeting, asks first
	campaigner check                  # validate config and assets, no sends

For more information, see the documentation at https://github.com/oarkflow/campaigner
*/
package campaigner

// Version is the current version of Campaigner
const Version = "1.0.0"

// BuildDate is set at build time
var BuildDate string

// GitCommit is set at build time
var GitCommit string
