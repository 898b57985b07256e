// Package digest decides which upcoming events go into one show-thread
// post and renders the post's title and body.
//
// Selection uses a graduated threshold: the nearest event must start
// within the base threshold for a post to happen at all, and each
// accepted event raises the allowed horizon by a fixed increment. That
// batches same-day shows with staggered start times into a single
// thread while leaving events still too far out for the next tick.
//
// With the base at 10h and the increment at 2h, events at now+2h,
// now+8h and now+14h batch as exactly the first two: 2 < 10 accepts the
// first and raises the horizon to 12, 8 < 12 accepts the second and
// raises it to 14, and 14 < 14 fails.
package digest
