package internal

import "github.com/sirupsen/logrus"

// logCleanupFailure reports a panic recovered from an effect's cleanup
// function. Cleanup failures must never block the next run or disposal
// (spec §4.4/§7), so this only logs; it never re-panics.
func (g *Graph) logCleanupFailure(id NodeID, r any) {
	var logger logrus.FieldLogger = g.logger
	if g.logger == nil {
		logger = logrus.StandardLogger()
	}
	logger.WithFields(logrus.Fields{
		"node":  id,
		"panic": r,
	}).Warn("reactor: effect cleanup panicked, swallowing")
}
