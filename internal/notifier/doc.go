// Package notifier provides the Publisher interface and its backends.
//
// The primary backend submits self-posts to a subreddit using Reddit's
// script-app password grant. A Twitter backend announces the thread
// title only, and a dry-run backend prints the post instead of
// submitting it. None of the backends own retry logic: a failed submit
// surfaces to the notify loop, which tries again on its next tick.
package notifier
