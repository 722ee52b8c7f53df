// Package io provides JSON and YAML export of reference graphs and traces,
// and JSON import of graphs.
//
// # Graph Format
//
//	{
//	  "nodes": [
//	    {"tag": "#1", "entity": "IFCWALL"},
//	    {"tag": "#2", "entity": "IFCPOINT"}
//	  ],
//	  "edges": [
//	    {"from": "#1", "to": "#2"},
//	    {"from": "#1", "to": "#9"}
//	  ]
//	}
//
// Edges keep file order and duplicates. A target such as "#9" above may have
// no node of its own. Nodes synthesized for such targets in a trace carry
// "placeholder": true and no entity.
//
// [ReadJSON] restores a graph written by [WriteJSON] exactly; the parse cache
// stores graphs this way.
//
// # Trace Format
//
// [WriteTrace] adds the start tag, the largest hop distance, and per node the
// hop distance and optional layout coordinates:
//
//	start: '#1'
//	max_distance: 1
//	nodes:
//	  - tag: '#1'
//	    entity: IFCWALL
//	    distance: 0
//	    x: -0.41
//	    y: 0.12
package io
