// Package ifc reads the record structure of IFC STEP text files.
//
// Only single-line records of the form
//
//	#24=IFCWALL('2O2Fr$t4X7Zf8NOew3FLOH',#2,$,$,#30,#31,$);
//
// are recognized. The tag ("#24") and entity type ("IFCWALL") become a
// node, and every "#<digits>" inside the argument list becomes an edge from
// the record to the referenced tag. Everything else in the file is ignored,
// including records that span several lines. No schema validation is done.
//
// # Usage
//
//	g, err := ifc.ParseFile("model.ifc")
//	if err != nil {
//	    return err
//	}
//	trace, err := g.Reach(ifc.NormalizeTag("24"), refgraph.ReachOptions{})
package ifc
