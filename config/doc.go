// Package config loads a dispatcher setup from YAML and builds a ready
// *logger.Logger from it.
//
// A configuration file looks like:
//
//	logger:
//	  utc_time: true
//	  clock: coarse
//	  processors:
//	    - name: request
//	      type: uuid
//	      key: request_id
//	  handlers:
//	    - name: console
//	      type: console
//	      output: stdout
//	      format: text
//	      min_level: notice
//	    - name: audit
//	      type: zerolog
//	      output: stderr
//	      levels: [emergency, alert]
//	      filter: has(context.user)
//
// Unknown level names in levels are skipped, and an unknown min_level
// registers the handler at every level. A handler left with no known
// level is not registered.
//
// NLOG_UTC_TIME, NLOG_CLOCK and NLOG_MIN_LEVEL override the file; see FromEnv.
package config
