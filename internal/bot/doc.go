// Package bot runs the two long-lived loops: one scrapes tomorrow's
// events into the store, the other publishes show threads for events
// inside the notification window.
//
// The loops never call each other; the events table is their only
// coordination point. Each runs on a fixed hourly schedule with no
// backoff: a failed cycle is logged and the next tick is the retry.
package bot
