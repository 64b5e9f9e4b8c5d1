package http_server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/danthegoodman1/hgcalntuple/catalog"
	"github.com/danthegoodman1/hgcalntuple/gologger"
	"github.com/danthegoodman1/hgcalntuple/ntuple"
	"github.com/danthegoodman1/hgcalntuple/schema"
	"github.com/danthegoodman1/hgcalntuple/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type (
	CreateSessionReqBody struct {
		// Local path or s3://bucket/key of a ROOT or parquet ntuple
		Path string `validate:"required"`
		// Defaults to NTUPLE_TREE
		Tree string
	}

	SessionResponse struct {
		ID      string
		Path    string
		Tree    string
		Events  int
		HasHits bool
	}

	EventResponse struct {
		Entry int
		// run:lumi:event, empty if the ntuple has no id columns
		ID string `json:",omitempty"`
		// object count per plural kind present in the entry
		Collections map[string]int
		// kinds whose columns disagree in length
		Errors map[string]string `json:",omitempty"`
	}
)

func (s *HTTPServer) CreateSession(c *CustomContext) error {
	var reqBody CreateSessionReqBody
	if err := ValidateRequest(c, &reqBody); err != nil {
		return c.String(http.StatusBadRequest, err.Error())
	}
	tree := reqBody.Tree
	if tree == "" {
		tree = utils.NTUPLE_TREE
	}

	n, err := ntuple.Open(c.Request().Context(), reqBody.Path, tree)
	if err != nil {
		if utils.IsPermanent(err) || errors.Is(err, ntuple.ErrStorage) {
			return c.String(http.StatusBadRequest, err.Error())
		}
		return c.InternalError(err, "error opening ntuple")
	}

	sess := s.Sessions.Add(reqBody.Path, tree, n)
	zerolog.Ctx(c.Request().Context()).Info().Str(string(gologger.SessionIDKey), sess.ID).Str("path", reqBody.Path).Int("events", n.NEvents()).Msg("opened session")
	return c.JSON(http.StatusOK, SessionResponse{
		ID:      sess.ID,
		Path:    sess.Path,
		Tree:    sess.Tree,
		Events:  n.NEvents(),
		HasHits: n.HasHits(),
	})
}

func (s *HTTPServer) DeleteSession(c *CustomContext) error {
	err := s.Sessions.Remove(c.Param("id"))
	if errors.Is(err, ErrSessionNotFound) {
		return c.String(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return c.InternalError(err, "error closing session")
	}
	return c.NoContent(http.StatusOK)
}

func (s *HTTPServer) GetColumns(c *CustomContext) error {
	return s.withSession(c, func(n *ntuple.Ntuple) error {
		columns, err := schema.Describe(n)
		if err != nil {
			return c.NtupleError(err, "error describing columns")
		}
		return c.JSON(http.StatusOK, utils.ArrayOrEmpty(columns))
	})
}

func (s *HTTPServer) GetEvent(c *CustomContext) error {
	entry, err := intParam(c, "entry")
	if err != nil {
		return err
	}

	var res EventResponse
	err = s.withSession(c, func(n *ntuple.Ntuple) error {
		ev, err := n.Event(entry)
		if err != nil {
			return c.NtupleError(err, "error loading event")
		}
		res = EventResponse{
			Entry:       entry,
			Collections: map[string]int{},
		}
		if id, err := ev.IDString(); err == nil {
			res.ID = id
		}

		columns := n.Columns()
		for _, kind := range catalog.Kinds {
			if !utils.ContainsString(columns, kind.Column(kind.SizeField)) {
				continue
			}
			size, err := ev.Collection(kind).Size()
			if err != nil {
				if res.Errors == nil {
					res.Errors = map[string]string{}
				}
				res.Errors[kind.Plural()] = err.Error()
				continue
			}
			res.Collections[kind.Plural()] = size
		}
		return nil
	})
	if err != nil {
		return err
	}
	if res.Collections == nil {
		// the handler already answered
		return nil
	}
	return c.JSON(http.StatusOK, res)
}

func (s *HTTPServer) GetCollection(c *CustomContext) error {
	entry, err := intParam(c, "entry")
	if err != nil {
		return err
	}
	kind, err := kindParam(c)
	if err != nil {
		return err
	}

	var objects []map[string]any
	handled := false
	err = s.withSession(c, func(n *ntuple.Ntuple) error {
		ev, err := n.Event(entry)
		if err != nil {
			handled = true
			return c.NtupleError(err, "error loading event")
		}
		objects = []map[string]any{}
		for o, err := range ev.Collection(kind).All() {
			if err != nil {
				handled = true
				return c.NtupleError(err, "error reading collection")
			}
			exported, err := exportObject(c, o)
			if err != nil {
				handled = true
				return c.NtupleError(err, "error exporting object")
			}
			objects = append(objects, exported)
		}
		return nil
	})
	if err != nil || handled {
		return err
	}
	return c.JSON(http.StatusOK, objects)
}

func (s *HTTPServer) GetObject(c *CustomContext) error {
	entry, err := intParam(c, "entry")
	if err != nil {
		return err
	}
	index, err := intParam(c, "index")
	if err != nil {
		return err
	}
	kind, err := kindParam(c)
	if err != nil {
		return err
	}

	var exported map[string]any
	err = s.withSession(c, func(n *ntuple.Ntuple) error {
		ev, err := n.Event(entry)
		if err != nil {
			return c.NtupleError(err, "error loading event")
		}
		o, err := ev.Collection(kind).Get(index)
		if err != nil {
			return c.NtupleError(err, "error getting object")
		}
		exported, err = exportObject(c, o)
		if err != nil {
			return c.NtupleError(err, "error exporting object")
		}
		return nil
	})
	if err != nil || exported == nil {
		return err
	}
	return c.JSON(http.StatusOK, exported)
}

// withSession runs f on the session named by the id param. f may answer the
// request itself, in which case it returns the result of writing the response.
func (s *HTTPServer) withSession(c *CustomContext, f func(n *ntuple.Ntuple) error) error {
	sess, err := s.Sessions.Get(c.Param("id"))
	if err != nil {
		return c.String(http.StatusNotFound, err.Error())
	}
	logger := zerolog.Ctx(c.Request().Context())
	logger.UpdateContext(func(zc zerolog.Context) zerolog.Context {
		return zc.Str(string(gologger.SessionIDKey), sess.ID)
	})
	return sess.With(f)
}

func intParam(c *CustomContext, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s must be an integer", name))
	}
	return v, nil
}

// kindParam resolves the kind path param. PFClusters need their column prefix
// in the prefix query param.
func kindParam(c *CustomContext) (catalog.Kind, error) {
	name := c.Param("kind")
	if strings.EqualFold(name, catalog.PFCluster.Collection) {
		prefix := c.QueryParam("prefix")
		if prefix == "" {
			return catalog.Kind{}, echo.NewHTTPError(http.StatusBadRequest, "pfclusters need a prefix query param")
		}
		return catalog.PFCluster.WithPrefix(prefix), nil
	}
	kind, ok := catalog.Lookup(name)
	if !ok {
		return catalog.Kind{}, echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("unknown kind %s", name))
	}
	return kind, nil
}

// exportObject exports o, flattened when the flat query param is set.
func exportObject(c *CustomContext, o ntuple.Object) (map[string]any, error) {
	exported, err := o.Export()
	if err != nil {
		return nil, err
	}
	if c.QueryParam("flat") == "" {
		return exported, nil
	}
	return utils.FlattenJSON(exported)
}
