/*
 * json.go, part of gocrys.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package chemjson

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"

	crys "github.com/rmera/gocrys"
)

//Stage is the part of the exchange where an Error happened.
type Stage string

const (
	StageDecode      Stage = "decode"      //reading a structure
	StageProcess     Stage = "process"     //working on it
	StagePostProcess Stage = "postprocess" //preparing the output
)

//Error travels as JSON to the program at the other end, so it can tell
//what went wrong and where.
type Error struct {
	IsError   bool   `json:"isError"` //false means no error, and every other field is zero.
	Stage     Stage  `json:"stage"`
	Structure int    `json:"structure"` //index of the structure, in the order they were sent.
	Function  string `json:"function"`
	Message   string `json:"message"`
}

func (J *Error) Error() string {
	return J.Message
}

//Marshal returns the JSON form of the error. It panics if that fails,
//as there is no sane way to report it.
func (J *Error) Marshal() []byte {
	ret, err := json.Marshal(J)
	if err != nil {
		panic(J.Error() + " - " + err.Error())
	}
	return ret
}

//NewError wraps err, raised by function at the given stage.
func NewError(stage Stage, function string, err error) *Error {
	return &Error{IsError: true, Stage: stage, Function: function, Message: err.Error()}
}

//Information about a set of structures, to be passed to the calling program.
type Info struct {
	Structures        int
	AtomsPerStructure []int
	Formulas          []string
	Crystal           []bool
	Bonds             []int
	CentersOfMass     [][3]float64
}

//InfoFor collects the information for the given structures. It infers
//the bonds of each structure, so it can be slow for large ones.
func InfoFor(structures ...*crys.Structure) *Info {
	J := &Info{Structures: len(structures)}
	for _, S := range structures {
		J.AtomsPerStructure = append(J.AtomsPerStructure, S.Len())
		J.Formulas = append(J.Formulas, S.Formula())
		J.Crystal = append(J.Crystal, S.IsCrystal())
		J.Bonds = append(J.Bonds, len(S.Bonds()))
		J.CentersOfMass = append(J.CentersOfMass, S.CenterOfMass())
	}
	return J
}

//Send writes the info to out as one line of JSON.
func (J *Info) Send(out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(J); err != nil {
		return NewError(StagePostProcess, "chemjson.Info.Send", err)
	}
	return nil
}

//EncodeStructure writes the plain-data form of S to out, as one line of JSON.
func EncodeStructure(out io.Writer, S *crys.Structure) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(S.Plain()); err != nil {
		return NewError(StagePostProcess, "chemjson.EncodeStructure", err)
	}
	return nil
}

//DecodeStructure reads one line of JSON from in and builds a new structure
//from it. The structure and its atoms get new IDs. It returns io.EOF, as the
//message of the error, when there is nothing left to read.
func DecodeStructure(in *bufio.Reader) (*crys.Structure, *Error) {
	line, err := in.ReadBytes('\n')
	if err != nil && (err != io.EOF || len(strings.TrimSpace(string(line))) == 0) {
		return nil, NewError(StageDecode, "chemjson.DecodeStructure", err)
	}
	var P crys.PlainStructure
	if err := json.Unmarshal(line, &P); err != nil {
		return nil, NewError(StageDecode, "chemjson.DecodeStructure", err)
	}
	S, err := crys.FromPlain(P)
	if err != nil {
		return nil, NewError(StageDecode, "chemjson.DecodeStructure", err)
	}
	return S, nil
}
