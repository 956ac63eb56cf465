// Package main implements the make-version CLI tool.
//
// The make-version tool automates the release bump for a CMake project. Given a
// version, it writes ./version.h:
//
//	#ifndef __version_h__
//	#define __version_h__
//	#define VERSION "<version>"
//	#define VERSION_DATE "<ctime timestamp>"
//	#endif
//
// and then runs, in order:
//
//	cmake --build build
//	git add version.h
//	git commit -m "Bump Version: <version>"
//	git tag r<version>
//
// Command Usage:
//
//	make-version <version>
//
// The version is taken as is. It is not validated, and an argument that looks
// like a flag is treated as the version.
//
// Exit codes:
//
//	1  wrong number of arguments (usage is printed to stdout), or version.h could not be written
//	0  otherwise, even when the build or any git command fails
//
// Examples:
//
//	# Release 1.4.0 (writes VERSION "1.4.0", tags r1.4.0)
//	make-version 1.4.0
//
//	# Prerelease labels are fine too
//	make-version 2.0b1
//
// For the library API, see the "pkg" package.
package main
