// Package portfolio holds the static content shown by the terminal: name,
// role, biography, projects, skills, contact details and social links.
//
// A default payload is embedded in the binary. Users can point termfolio at
// their own YAML file (see `termfolio config init`), which is parsed with
// unknown keys rejected and then validated:
//
//	p, err := portfolio.Load("me.yaml")
//	if err != nil {
//	    var verrs portfolio.ValidationErrors
//	    if errors.As(err, &verrs) {
//	        // verrs.Fields() lists the offending paths
//	    }
//	}
//
// A Portfolio is never modified after loading and may be shared between
// terminal sessions.
package portfolio
