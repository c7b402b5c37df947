package main

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
)

type HttpError struct {
	code int
	error
}

func (e HttpError) Error() string {
	return e.error.Error()
}

func NewHttpError(code int, err error) HttpError {
	return HttpError{
		code:  code,
		error: err,
	}
}

type server struct {
	controller controller
}

func (s server) RegisterRoutes(r *gin.Engine) {
	r.POST("/lint", validateBody, s.LintDocument)
	r.POST("/tokens", validateBody, s.Tokenize)
	r.POST("/text", validateBody, s.HTMLToText)
	r.GET("/vocabulary", s.Vocabulary)
}

func (s server) LintDocument(c *gin.Context) {
	content, ok := allowedContentTypeEnumMap[c.ContentType()]
	if !ok {
		handleError(c, NewHttpError(400, errors.New("invalid content type - must be text/html or text/plain")))
		return
	}

	maxWords := 0
	if raw, exists := c.GetQuery("maxWords"); exists {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			handleError(c, NewHttpError(400, errors.New("maxWords must be a positive integer")))
			return
		}
		maxWords = n
	}

	rep, err := s.controller.LintDocument(c.Request.Body, content, maxWords)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(200, rep)
}

func (s server) Tokenize(c *gin.Context) {
	content, ok := allowedContentTypeEnumMap[c.ContentType()]
	if !ok {
		handleError(c, NewHttpError(400, errors.New("invalid content type - must be text/html or text/plain")))
		return
	}

	tokens, err := s.controller.Tokenize(c.Request.Body, content)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(200, tokens)
}

func (s server) HTMLToText(c *gin.Context) {
	if allowedContentTypeEnumMap[c.ContentType()] != contentTypeHTML {
		handleError(c, NewHttpError(400, errors.New("invalid content type - must be text/html")))
		return
	}

	data, err := s.controller.ExtractText(c.Request.Body)
	if err != nil {
		handleError(c, err)
		return
	}

	c.Data(200, "text/plain", data)
}

func (s server) Vocabulary(c *gin.Context) {
	c.JSON(200, s.controller.VocabularyStats())
}

func validateBody(c *gin.Context) {
	if c.Request.Body == nil {
		handleError(c, NewHttpError(400, errors.New("request body missing")))
	} else if _, err := c.Request.Body.Read(nil); err == io.EOF {
		handleError(c, NewHttpError(400, errors.New("request body missing")))
	} else {
		c.Next()
	}
}

func handleError(c *gin.Context, err error) {
	if err == nil {
		abort(c, 500, errors.New("abort called on nil error"))
		return
	}
	switch e := err.(type) {
	case HttpError:
		abort(c, e.code, e.error)
	default:
		abort(c, 500, e)
	}
}

func abort(c *gin.Context, code int, err error) {
	switch {
	case code <= 500:
		c.JSON(code, map[string]interface{}{
			"status":  code,
			"message": err.Error(),
		})
		c.Abort()
	default:
		_ = c.AbortWithError(code, err)
	}
}
