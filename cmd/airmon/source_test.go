package main

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/golang/mock/gomock"
	. "gopkg.in/check.v1"
)

type SerialSourceSuite struct {
	ctrl   *gomock.Controller
	port   *MockPort
	source *serialSource
}

var _ = Suite(&SerialSourceSuite{})

// gomock needs the *C of the running test, not the fixture one.
func (s *SerialSourceSuite) setUp(c *C) {
	s.ctrl = gomock.NewController(c)
	s.port = NewMockPort(s.ctrl)
	s.source = newSerialSource("/dev/ttyTEST", s.port)
}

func (s *SerialSourceSuite) expectTimeouts() {
	s.port.EXPECT().SetReadTimeout(gomock.Any()).Return(nil).AnyTimes()
}

func feed(data string) func(p []byte) (int, error) {
	return func(p []byte) (int, error) {
		return copy(p, data), nil
	}
}

func (s *SerialSourceSuite) TestReadsLine(c *C) {
	s.setUp(c)
	defer s.ctrl.Finish()
	s.expectTimeouts()
	s.port.EXPECT().Read(gomock.Any()).DoAndReturn(feed("350.0\r\n"))

	line, err := s.source.ReadLine(time.Second)
	c.Check(err, IsNil)
	c.Check(line, Equals, "350.0")
}

func (s *SerialSourceSuite) TestLineSplitAcrossReads(c *C) {
	s.setUp(c)
	defer s.ctrl.Finish()
	s.expectTimeouts()
	gomock.InOrder(
		s.port.EXPECT().Read(gomock.Any()).DoAndReturn(feed("35")),
		s.port.EXPECT().Read(gomock.Any()).DoAndReturn(feed("0.0\n")),
	)

	line, err := s.source.ReadLine(time.Second)
	c.Check(err, IsNil)
	c.Check(line, Equals, "350.0")
}

func (s *SerialSourceSuite) TestKeepsFollowingLines(c *C) {
	s.setUp(c)
	defer s.ctrl.Finish()
	s.expectTimeouts()
	s.port.EXPECT().Read(gomock.Any()).DoAndReturn(feed("350.0\n1500\n")).Times(1)

	line, err := s.source.ReadLine(time.Second)
	c.Check(err, IsNil)
	c.Check(line, Equals, "350.0")

	line, err = s.source.ReadLine(time.Second)
	c.Check(err, IsNil)
	c.Check(line, Equals, "1500")
}

func (s *SerialSourceSuite) TestTimeoutKeepsPartialLine(c *C) {
	s.setUp(c)
	defer s.ctrl.Finish()
	s.expectTimeouts()
	gomock.InOrder(
		s.port.EXPECT().Read(gomock.Any()).DoAndReturn(feed("12")),
		s.port.EXPECT().Read(gomock.Any()).Return(0, nil),
		s.port.EXPECT().Read(gomock.Any()).DoAndReturn(feed("34\n")),
	)

	_, err := s.source.ReadLine(time.Second)
	c.Check(err, Equals, ErrNoData)

	line, err := s.source.ReadLine(time.Second)
	c.Check(err, IsNil)
	c.Check(line, Equals, "1234")
}

func (s *SerialSourceSuite) TestNoTimeLeftIsNoData(c *C) {
	s.setUp(c)
	defer s.ctrl.Finish()

	_, err := s.source.ReadLine(0)
	c.Check(err, Equals, ErrNoData)
}

func (s *SerialSourceSuite) TestPortErrors(c *C) {
	s.setUp(c)
	defer s.ctrl.Finish()
	s.expectTimeouts()
	s.port.EXPECT().Read(gomock.Any()).Return(0, io.EOF)

	_, err := s.source.ReadLine(time.Second)
	c.Check(err, ErrorMatches, "could not read '/dev/ttyTEST': EOF")
	c.Check(errors.Is(err, io.EOF), Equals, true)
}

func (s *SerialSourceSuite) TestTimeoutSetupError(c *C) {
	s.setUp(c)
	defer s.ctrl.Finish()
	s.port.EXPECT().SetReadTimeout(gomock.Any()).Return(errors.New("port has been closed"))

	_, err := s.source.ReadLine(time.Second)
	c.Check(err, ErrorMatches, "could not set read timeout on '/dev/ttyTEST': port has been closed")
}

func (s *SerialSourceSuite) TestLineTooLong(c *C) {
	s.setUp(c)
	defer s.ctrl.Finish()
	s.expectTimeouts()
	s.port.EXPECT().Read(gomock.Any()).DoAndReturn(func(p []byte) (int, error) {
		return copy(p, strings.Repeat("a", len(p))), nil
	}).AnyTimes()

	_, err := s.source.ReadLine(time.Second)
	c.Check(errors.Is(err, ErrLineTooLong), Equals, true)
	c.Check(s.source.pending, HasLen, 0)
}

func (s *SerialSourceSuite) TestClose(c *C) {
	s.setUp(c)
	defer s.ctrl.Finish()
	s.port.EXPECT().Close().Return(nil).Times(1)

	c.Check(s.source.Close(), IsNil)
	c.Check(s.source.Close(), Equals, ErrSourceClosed)

	_, err := s.source.ReadLine(time.Second)
	c.Check(err, Equals, ErrSourceClosed)
}
