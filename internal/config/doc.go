// Package config loads the optional HCL settings file. Every attribute is
// optional; values left unset fall back to the command-line defaults.
//
// Expressions may read environment variables through the env object:
//
//	log_level = "debug"
//
//	render {
//	  format      = "dot"
//	  show_labels = true
//	}
//
//	serve {
//	  port       = env.INETGRAPH_PORT
//	  cache_size = 512
//	}
package config
