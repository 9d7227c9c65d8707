/*
 * doc.go, part of gocrys.
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

//Package chemjson implements serialization and unserialization of
//goCrys structures. Its planned use is the communication of goCrys
//programs with other, independent programs, such as a display layer,
//which can be written in languages other than Go, as long as those
//languages can read and write JSON.
//Structures travel in their plain-data form (crys.PlainStructure),
//one JSON document per line, so several can be sent through the
//same pipe.
package chemjson
